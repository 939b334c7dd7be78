package vision

import (
	"regexp"
	"strings"
)

// expiryKeywords is scanned in this exact order when looking for a keyword
// near a match; the first one that lands in a distance bracket wins and the
// scan stops. MFG/PKG style words appear here too so that a lone
// manufacture date still gets keyword proximity before the penalty below
// pulls it back down.
var expiryKeywords = []string{
	// English
	"EXP", "EXPIRY", "EXPIRES", "EXPIRATION", "EXPIRED",
	"BEST BEFORE", "BEST BY", "BB", "BBE", "BBD",
	"USE BY", "USE BEFORE", "USE-BY",
	"SELL BY", "SELL BEFORE",
	"VALID UNTIL", "VALID THRU",
	"GOOD UNTIL", "GOOD THRU",
	"CONSUME BY", "CONSUME BEFORE",
	"MFG", "MFD", "MANUFACTURED",
	"PKG", "PACKAGED",

	// Spanish
	"CADUCIDAD", "CAD", "CADUCA",
	"VENCE", "VENCIMIENTO", "VENC",
	"FECHA DE VENCIMIENTO", "FECHA VENC",
	"CONSUMIR ANTES", "CONSUMIR PREFERENTEMENTE ANTES",
	"FECHA DE CADUCIDAD",
	"EXPIRA", "EXPIRACIÓN",
	"CONSUMO PREFERENTE",
	"DISPONIBLE HASTA",
}

// nonExpiryKeywords mark manufacture/packaging dates, which must not be
// mistaken for expiry dates.
var nonExpiryKeywords = []string{
	"MFG", "MFD", "MANUFACTURED", "MANUFACTURING",
	"PKG", "PACKAGED", "PACKAGING",
	"PROD", "PRODUCED", "PRODUCTION",
	"FABRICACION", "FABRICADO", "FAB",
	"EMPAQUE", "EMPACADO",
}

var (
	fullDateShape = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
	numberGroups  = regexp.MustCompile(`\d+`)
)

// keywordAnchored reports whether the pattern itself required an expiry
// keyword next to the number.
func keywordAnchored(kind PatternKind) bool {
	return kind == ExpFormat || kind == UseByFormat || kind == ExpShortFormat
}

// scoreMatch computes the confidence that matchText is the true expiry date
// within fullText. Pure function of its inputs; currentYear is injected so
// the year-plausibility step stays reproducible in tests. The result is
// clamped to [0, 100] only at the very end.
func scoreMatch(matchText, fullText string, kind PatternKind, currentYear int) float64 {
	confidence := 50.0

	fullUpper := strings.ToUpper(fullText)
	matchUpper := strings.ToUpper(matchText)
	matchIndex := strings.Index(fullUpper, matchUpper)

	// The pattern already carried an expiry keyword.
	if keywordAnchored(kind) {
		confidence += 40
	}

	// Proximity to the first expiry keyword that lands in a bracket.
	if matchIndex >= 0 {
	keywordScan:
		for _, keyword := range expiryKeywords {
			keywordIndex := strings.Index(fullUpper, keyword)
			if keywordIndex < 0 {
				continue
			}
			distance := keywordIndex - matchIndex
			if distance < 0 {
				distance = -distance
			}
			switch {
			case distance < 15:
				confidence += 40
				break keywordScan
			case distance < 50:
				confidence += 30
				break keywordScan
			case distance < 100:
				confidence += 20
				break keywordScan
			case distance < 200:
				confidence += 10
				break keywordScan
			}
		}

		// Manufacture/packaging keyword right next to the match.
		for _, keyword := range nonExpiryKeywords {
			keywordIndex := strings.Index(fullUpper, keyword)
			if keywordIndex < 0 {
				continue
			}
			distance := keywordIndex - matchIndex
			if distance < 0 {
				distance = -distance
			}
			if distance < 20 {
				confidence -= 40
				break
			}
		}
	}

	// A full day/month/year shape is more specific than month/year alone.
	if fullDateShape.MatchString(matchText) {
		confidence += 10
	}

	// Year plausibility: expiry dates live in the near future.
	if numbers := numberGroups.FindAllString(matchText, -1); len(numbers) >= 2 {
		year := normalizeYear(numbers[len(numbers)-1])
		diff := year - currentYear
		switch {
		case diff >= 0 && diff <= 5:
			confidence += 30
		case diff >= -2 && diff < 0:
			confidence -= 10
		case diff < -2:
			confidence -= 50
		case diff > 5:
			confidence -= 20
		}
	}

	// Explicit VENCIMIENTO nearby stacks on top of the generic keyword bonus.
	if vencIndex := strings.Index(fullUpper, "VENCIMIENTO"); vencIndex >= 0 && matchIndex >= 0 {
		distance := vencIndex - matchIndex
		if distance < 0 {
			distance = -distance
		}
		if distance < 100 {
			confidence += 20
		}
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
