package vision

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PatternKind names the date-format category that produced a candidate.
type PatternKind string

const (
	ExpFormat      PatternKind = "EXP_FORMAT"
	UseByFormat    PatternKind = "USE_BY_FORMAT"
	ExpShortFormat PatternKind = "EXP_SHORT_FORMAT"
	DDMMYYYY       PatternKind = "DD_MM_YYYY"
	MMYYYY         PatternKind = "MM_YYYY"
	YYYYMMDD       PatternKind = "YYYY_MM_DD"
	MonthYear      PatternKind = "MONTH_YEAR"
	MMYY           PatternKind = "MM_YY"
)

// groupLayout tells parseMatch how capture groups map to year/month/day.
type groupLayout int

const (
	layoutDMY       groupLayout = iota // day, month, year
	layoutYM                           // year, month (day = 1)
	layoutMY                           // month, year (day = 1)
	layoutYMD                          // year, month, day (ISO)
	layoutMonthName                    // english month name, year (day = 1)
)

type datePattern struct {
	kind   PatternKind
	re     *regexp.Regexp
	layout groupLayout
}

// datePatterns is tried in this fixed order. Keyword-anchored formats come
// first; bare numeric formats later. Every match of every pattern becomes a
// candidate, ranking is done afterwards by confidence alone.
var datePatterns = []datePattern{
	{
		kind:   ExpFormat,
		re:     regexp.MustCompile(`(?i)(?:EXP|EXPIRY|EXPIRES|EXPIRATION|BB|BBE|BBD|BEST\s+BEFORE|BEST\s+BY|USE\s+BY|CADUCIDAD|CAD|VENC|VENCIMIENTO|FECHA\s+DE\s+VENCIMIENTO)[:\s]*\n*\s*(\d{1,2})[/\-.\s](\d{1,2})[/\-.\s](\d{4}|\d{2})`),
		layout: layoutDMY,
	},
	{
		kind:   UseByFormat,
		re:     regexp.MustCompile(`(?i)(?:USE\s+BY|BEST\s+BEFORE|BEST\s+BY|VENC|CADUCIDAD)[:\s]*(\d{4})[/\-.](\d{1,2})`),
		layout: layoutYM,
	},
	{
		kind:   ExpShortFormat,
		re:     regexp.MustCompile(`(?i)(?:EXP|BB|BBE|BBD|CAD|VENC)[:\s]*(\d{1,2})[/\-](\d{2})`),
		layout: layoutMY,
	},
	{
		kind:   DDMMYYYY,
		re:     regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4}|\d{2})\b`),
		layout: layoutDMY,
	},
	{
		kind:   MMYYYY,
		re:     regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{4})\b`),
		layout: layoutMY,
	},
	{
		kind:   YYYYMMDD,
		re:     regexp.MustCompile(`\b(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})\b`),
		layout: layoutYMD,
	},
	{
		kind:   MonthYear,
		re:     regexp.MustCompile(`(?i)\b(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC|JANUARY|FEBRUARY|MARCH|APRIL|JUNE|JULY|AUGUST|SEPTEMBER|OCTOBER|NOVEMBER|DECEMBER)[,\s]+(\d{4}|\d{2})\b`),
		layout: layoutMonthName,
	},
	{
		kind:   MMYY,
		re:     regexp.MustCompile(`\b(\d{1,2})[/\-](\d{2})\b`),
		layout: layoutMY,
	},
}

var monthMap = map[string]int{
	"JAN": 1, "JANUARY": 1,
	"FEB": 2, "FEBRUARY": 2,
	"MAR": 3, "MARCH": 3,
	"APR": 4, "APRIL": 4,
	"MAY": 5,
	"JUN": 6, "JUNE": 6,
	"JUL": 7, "JULY": 7,
	"AUG": 8, "AUGUST": 8,
	"SEP": 9, "SEPTEMBER": 9,
	"OCT": 10, "OCTOBER": 10,
	"NOV": 11, "NOVEMBER": 11,
	"DEC": 12, "DECEMBER": 12,
}

// DateCandidate is one regex match converted to a validated calendar date.
type DateCandidate struct {
	RawText     string      `json:"raw_text"`
	DateValue   string      `json:"date_value"` // YYYY-MM-DD
	Confidence  float64     `json:"confidence"`
	PatternUsed PatternKind `json:"pattern_used"`
}

// normalizeYear expands 2-digit years: <=50 lands in 2000s, >50 in 1900s.
func normalizeYear(s string) int {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if year < 100 {
		if year <= 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	return year
}

// isValidDate accepts only real calendar dates between 2000 and 2100.
func isValidDate(year, month, day int) bool {
	if year < 2000 || year > 2100 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	// time.Date normalizes overflow (Feb 30 -> Mar 2), so round-trip check
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// parseMatch converts regex capture groups to a calendar date according to
// the pattern's layout. Returns ok=false for anything that fails validation.
func parseMatch(groups []string, layout groupLayout) (time.Time, bool) {
	var year, month, day int

	toInt := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	switch layout {
	case layoutDMY:
		if len(groups) < 4 {
			return time.Time{}, false
		}
		day = toInt(groups[1])
		month = toInt(groups[2])
		year = normalizeYear(groups[3])

	case layoutYM:
		if len(groups) < 3 {
			return time.Time{}, false
		}
		year = toInt(groups[1])
		month = toInt(groups[2])
		day = 1

	case layoutMY:
		if len(groups) < 3 {
			return time.Time{}, false
		}
		month = toInt(groups[1])
		year = normalizeYear(groups[2])
		day = 1

	case layoutYMD:
		if len(groups) < 4 {
			return time.Time{}, false
		}
		year = toInt(groups[1])
		month = toInt(groups[2])
		day = toInt(groups[3])

	case layoutMonthName:
		if len(groups) < 3 {
			return time.Time{}, false
		}
		m, ok := monthMap[strings.ToUpper(groups[1])]
		if !ok {
			return time.Time{}, false
		}
		month = m
		year = normalizeYear(groups[2])
		day = 1
	}

	if !isValidDate(year, month, day) {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// matchDates scans the text with every pattern and collects every match that
// survives calendar validation. Overlapping matches from different patterns
// are kept as independent candidates. Confidence is filled in later.
func matchDates(text string) []DateCandidate {
	if text == "" {
		return nil
	}

	var candidates []DateCandidate

	for _, p := range datePatterns {
		for _, groups := range p.re.FindAllStringSubmatch(text, -1) {
			date, ok := parseMatch(groups, p.layout)
			if !ok {
				continue
			}
			candidates = append(candidates, DateCandidate{
				RawText:     groups[0],
				DateValue:   date.Format("2006-01-02"),
				PatternUsed: p.kind,
			})
		}
	}

	return candidates
}
