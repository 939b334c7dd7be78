package vision

import "testing"

func TestCleanTextCharacterConfusions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"leading O before digit", "EXP O5/26", "EXP 05/26"},
		{"trailing O after digit", "EXP 2O/12/26", "EXP 20/12/26"},
		{"I between digits", "2I5", "215"},
		{"lowercase l between digits", "2l5", "215"},
		{"spaced separators", "12 / 25", "12/25"},
		{"already clean", "EXP 15/08/2026", "EXP 15/08/2026"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanText(tc.in); got != tc.want {
				t.Fatalf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanTextDropsBarcodeNoise(t *testing.T) {
	in := "BEST BEFORE 12/2026\n|||||||||||||\n..\nLOT: A12"
	got := CleanText(in)

	if got != "BEST BEFORE 12/2026\nLOT: A12" {
		t.Fatalf("noise lines not stripped: %q", got)
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"EXP O5/26 LOT: AO12",
		"1I2I3I4I5",
		"12 / 25 and 3 - 4 - 5",
		"|||||\nreal line\n||x||",
		"",
		"no digits at all",
		"2O 2O 2O",
	}

	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("cleaning not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
