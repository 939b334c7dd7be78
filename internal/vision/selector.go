package vision

import "sort"

// ExtractDates returns every validated date candidate in the text, scored
// against the full text and sorted by confidence descending. The sort is
// stable, so equal-confidence candidates keep their discovery order
// (pattern order, then left-to-right position in the text).
func ExtractDates(text string, currentYear int) []DateCandidate {
	candidates := matchDates(text)

	for i := range candidates {
		candidates[i].Confidence = scoreMatch(
			candidates[i].RawText,
			text,
			candidates[i].PatternUsed,
			currentYear,
		)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	return candidates
}

// SelectBest picks the top-ranked expiry date and, independently, the lot
// number. A low-confidence sole candidate is still returned; absence of one
// field never suppresses the other.
func SelectBest(text string, currentYear int) (date string, confidence float64, lot string, found bool) {
	candidates := ExtractDates(text, currentYear)

	lot, _ = ExtractLot(text)

	if len(candidates) == 0 {
		return "", 0, lot, false
	}

	best := candidates[0]
	return best.DateValue, best.Confidence, lot, true
}
