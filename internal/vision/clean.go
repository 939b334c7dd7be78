package vision

import (
	"regexp"
	"strings"
)

// OCR character-confusion fixes, applied in order. These only fire in
// digit-adjacent contexts so ordinary words are left alone.
var cleanRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\bO(\d)`), "0$1"},                  // O5 -> 05
	{regexp.MustCompile(`(\d)O\b`), "${1}0"},                // 2O -> 20
	{regexp.MustCompile(`(\d)[Il](\d)`), "${1}1${2}"},       // 2I5 -> 215
	{regexp.MustCompile(`(\d)\s+([/\-])\s+(\d)`), "$1$2$3"}, // 12 / 25 -> 12/25
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// CleanText normalizes raw OCR output before date extraction: merges common
// character confusions around digits and drops lines that are barcode noise.
// The substitution rules run to a fixpoint, so cleaning already-cleaned text
// is a no-op.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := dropNoiseLines(text)

	// Chained confusions ("1I2I3") need more than one pass because the
	// regex engine does not revisit consumed characters. Every rule strictly
	// shrinks the set of confusable characters, so this terminates.
	for {
		next := cleaned
		for _, rule := range cleanRules {
			next = rule.re.ReplaceAllString(next, rule.replacement)
		}
		if next == cleaned {
			break
		}
		cleaned = next
	}

	return cleaned
}

// dropNoiseLines removes lines that are evidently barcode artifacts: lines
// dominated by pipe characters, or very short fragments with no letters or
// digits at all.
func dropNoiseLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			pipes := strings.Count(trimmed, "|")
			if pipes*2 > len(trimmed) {
				continue
			}
			if len(trimmed) < 4 && nonAlnum.ReplaceAllString(trimmed, "") == "" {
				continue
			}
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
