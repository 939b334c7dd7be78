package vision

import "testing"

func TestMatchDatesKeywordFormat(t *testing.T) {
	candidates := matchDates("BEST BEFORE 15/08/2026")

	if len(candidates) == 0 {
		t.Fatal("expected at least one candidate")
	}

	found := false
	for _, c := range candidates {
		if c.PatternUsed == ExpFormat {
			found = true
			if c.DateValue != "2026-08-15" {
				t.Errorf("expected 2026-08-15, got %s", c.DateValue)
			}
		}
	}
	if !found {
		t.Error("expected an EXP_FORMAT candidate")
	}
}

func TestMatchDatesISOFormat(t *testing.T) {
	candidates := matchDates("2026-08-15")

	found := false
	for _, c := range candidates {
		if c.PatternUsed == YYYYMMDD && c.DateValue == "2026-08-15" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a YYYY_MM_DD candidate for 2026-08-15")
	}
}

func TestMatchDatesMonthName(t *testing.T) {
	candidates := matchDates("Best consumed before DEC 2026")

	found := false
	for _, c := range candidates {
		if c.PatternUsed == MonthYear {
			found = true
			if c.DateValue != "2026-12-01" {
				t.Errorf("month-year should default day to 1, got %s", c.DateValue)
			}
		}
	}
	if !found {
		t.Fatal("expected a MONTH_YEAR candidate")
	}
}

func TestMatchDatesRejectsImpossibleCalendarDate(t *testing.T) {
	// Feb 31 does not exist; the full substring must never become a
	// candidate even though shorter sub-patterns may still match inside it.
	candidates := matchDates("31/02/2026")

	for _, c := range candidates {
		if c.RawText == "31/02/2026" {
			t.Fatalf("impossible date surfaced as candidate: %+v", c)
		}
	}
}

func TestMatchDatesRejectsMonthThirteen(t *testing.T) {
	if candidates := matchDates("EXP 13 2026"); len(candidates) != 0 {
		t.Fatalf("expected zero candidates, got %+v", candidates)
	}
}

func TestMatchDatesYearWindow(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"15/08/1998", 0}, // 98 -> 1998, below window
		{"15/08/2101", 0}, // above window
		{"15/08/2099", 1},
	}

	for _, tc := range cases {
		got := 0
		for _, c := range matchDates(tc.text) {
			if c.PatternUsed == DDMMYYYY {
				got++
			}
		}
		if got != tc.want {
			t.Errorf("%q: expected %d DD_MM_YYYY candidates, got %d", tc.text, tc.want, got)
		}
	}
}

func TestMatchDatesEmptyText(t *testing.T) {
	if candidates := matchDates(""); len(candidates) != 0 {
		t.Fatalf("expected no candidates for empty text, got %d", len(candidates))
	}
}

func TestNormalizeYear(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"26", 2026},
		{"50", 2050},
		{"51", 1951},
		{"99", 1999},
		{"2026", 2026},
	}

	for _, tc := range cases {
		if got := normalizeYear(tc.in); got != tc.want {
			t.Errorf("normalizeYear(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMatchDatesKeepsOverlappingCandidates(t *testing.T) {
	// EXP_FORMAT swallows the keyword plus the numbers; DD_MM_YYYY matches
	// the bare numeric part. Both must survive as independent candidates.
	candidates := matchDates("EXP: 15/08/2026")

	var hasExp, hasBare bool
	for _, c := range candidates {
		switch c.PatternUsed {
		case ExpFormat:
			hasExp = true
		case DDMMYYYY:
			hasBare = true
		}
	}
	if !hasExp || !hasBare {
		t.Fatalf("expected overlapping EXP_FORMAT and DD_MM_YYYY candidates, got %+v", candidates)
	}
}
