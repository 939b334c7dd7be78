package vision

import (
	"regexp"
	"strings"
)

// lotPatterns are tried in order; the first one that matches anywhere in the
// text wins. The captureGroup flag distinguishes keyword patterns (return the
// identifier after the keyword) from the bare fallback, which returns the
// whole token so OCR'd "LO0055" comes back as a usable lot number.
var lotPatterns = []struct {
	re           *regexp.Regexp
	captureGroup bool
}{
	{regexp.MustCompile(`(?i)LOT[:\s]+([A-Z0-9]+)`), true},
	{regexp.MustCompile(`(?i)LOTE[:\s]+([A-Z0-9]+)`), true},
	{regexp.MustCompile(`(?i)L[:\s]+([A-Z0-9]+)`), true},
	{regexp.MustCompile(`(?i)BATCH[:\s]+([A-Z0-9]+)`), true},
	{regexp.MustCompile(`(?i)\bL[0O]\d{4,}\b`), false},
}

// ExtractLot finds a batch/lot identifier in the text. Lot numbers are
// numeric-heavy and OCR commonly reads 0 as the letter O, so every O in the
// result is rewritten to 0. Returns ok=false when nothing matches.
func ExtractLot(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	for _, p := range lotPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		lot := m[0]
		if p.captureGroup {
			lot = m[1]
		}
		lot = strings.ToUpper(lot)
		lot = strings.ReplaceAll(lot, "O", "0")
		return lot, true
	}

	return "", false
}
