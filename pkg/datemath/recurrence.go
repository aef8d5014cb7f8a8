package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"journal-ripples/pkg/rrule"
)

type cadence struct {
	re    *regexp.Regexp
	build func(m []string) (rrule.Rule, bool)
}

const weekdayList = `(?:` + weekdayAny + `)(?:\s*(?:,\s*and|,|and|/|&)\s*(?:` + weekdayAny + `))*`

// onWeekdays is an optional "on monday and friday" tail of an interval phrase.
const onWeekdays = `(?:\s+on\s+((?:` + weekdayAny + `)s?(?:\s*(?:,\s*and|,|and|/|&)\s*(?:` + weekdayAny + `)s?)*)\b)?`

// cadences run most specific first: a bare "every month" would otherwise
// shadow "every month on the 15th".
var cadences = []cadence{
	{
		re: regexp.MustCompile(`(?i)\b(?:every|each|on)?\s*(?:the\s+)?(` + ordinalWords + `)\s+(` + weekdayAny + `)\s+of\s+(?:the|each|every)\s+month\b`),
		build: ordinalWeekday,
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:every|each)\s+(` + ordinalWords + `)\s+(` + weekdayAny + `)\b`),
		build: ordinalWeekday,
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:(?:every|each)\s+month|monthly)\s+on\s+the\s+(\d{1,2})` + daySuffix + `\b`),
		build: monthDay,
	},
	{
		re: regexp.MustCompile(`(?i)\bon\s+the\s+(\d{1,2})` + daySuffix + `\s+of\s+(?:every|each)\s+month\b`),
		build: monthDay,
	},
	{
		re: regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})` + daySuffix + `,?\s+(?:every|each)\s+year\b`),
		build: func(m []string) (rrule.Rule, bool) { return yearlyOn(m[1], m[2]) },
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:(?:every|each)\s+year|annually|yearly)\s+on\s+(` + monthNames + `)\.?\s+(\d{1,2})` + daySuffix + `\b`),
		build: func(m []string) (rrule.Rule, bool) { return yearlyOn(m[1], m[2]) },
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+other\s+(day|week|month|year|` + weekdayAny + `)\b` + onWeekdays),
		build: func(m []string) (rrule.Rule, bool) {
			r, ok := everyN(2, m[1])
			return withDays(r, m[2]), ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bevery\s+(` + numberWords + `)\s+(day|week|month|year)s?\b` + onWeekdays),
		build: func(m []string) (rrule.Rule, bool) {
			n, ok := amount(m[1])
			if !ok || n < 1 {
				return rrule.Rule{}, false
			}
			r, ok := everyN(n, m[2])
			return withDays(r, m[3]), ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:(?:every|each)\s+week(day|end)|(?:on\s+)?week(day|end)s)\b`),
		build: func(m []string) (rrule.Rule, bool) {
			if strings.EqualFold(m[1]+m[2], "end") {
				return rrule.Rule{Freq: rrule.Weekly, ByWeekday: []rrule.Weekday{rrule.SA, rrule.SU}}, true
			}
			return rrule.Rule{Freq: rrule.Weekly, ByWeekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}}, true
		},
	},
	{
		re:    regexp.MustCompile(`(?i)\b(?:every|each)\s+(` + weekdayList + `)\b`),
		build: weekdaySet,
	},
	{
		re:    regexp.MustCompile(`(?i)\bon\s+((?:` + weekdayNames + `)s(?:\s*(?:,\s*and|,|and|/|&)\s*(?:` + weekdayNames + `)s)*)\b`),
		build: weekdaySet,
	},
	{
		re: regexp.MustCompile(`(?i)\b(daily|every\s*day|each\s+day|every\s+(?:morning|evening|night)|nightly|weekly|(?:every|each)\s+week|fortnightly|bi-?weekly|monthly|(?:every|each)\s+month|quarterly|yearly|annually|(?:every|each)\s+year)\b`),
		build: func(m []string) (rrule.Rule, bool) {
			word := strings.Join(strings.Fields(strings.ToLower(m[1])), " ")
			switch {
			case word == "weekly" || strings.HasSuffix(word, " week"):
				return rrule.Rule{Freq: rrule.Weekly}, true
			case word == "fortnightly" || strings.HasPrefix(word, "bi"):
				return rrule.Rule{Freq: rrule.Weekly, Interval: 2}, true
			case word == "monthly" || strings.HasSuffix(word, " month"):
				return rrule.Rule{Freq: rrule.Monthly}, true
			case word == "quarterly":
				return rrule.Rule{Freq: rrule.Monthly, Interval: 3}, true
			case word == "yearly" || word == "annually" || strings.HasSuffix(word, " year"):
				return rrule.Rule{Freq: rrule.Yearly}, true
			}
			return rrule.Rule{Freq: rrule.Daily}, true
		},
	},
}

var untilPhrase = regexp.MustCompile(`(?i)\b(?:until|till|through)\s+`)

// ParseRecurrence detects a recurrence description in text. The returned
// Next is the first occurrence on or after ref, anchored at ref.
func (p *Parser) ParseRecurrence(text string, ref time.Time) (Recurrence, bool) {
	day := p.refDay(ref)

	for _, c := range cadences {
		idx := c.re.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		rule, ok := c.build(submatches(text, idx))
		if !ok {
			continue
		}
		if until, ok := untilDate(text, day); ok {
			rule.Until = until
		}
		if rule.Validate() != nil {
			continue
		}
		rec := Recurrence{Rule: rule, Phrase: strings.TrimSpace(text[idx[0]:idx[1]])}
		if next, ok := rrule.Next(rule, day, day); ok {
			rec.Next = next
		}
		return rec, true
	}
	return Recurrence{}, false
}

func untilDate(text string, ref time.Time) (time.Time, bool) {
	loc := untilPhrase.FindStringIndex(text)
	if loc == nil {
		return time.Time{}, false
	}
	spans := findDates(text[loc[1]:], ref)
	if len(spans) == 0 || spans[0].start != 0 {
		return time.Time{}, false
	}
	return spans[0].date, true
}

func ordinalWeekday(m []string) (rrule.Rule, bool) {
	pos, ok := ordinals[strings.ToLower(m[1])]
	if !ok {
		return rrule.Rule{}, false
	}
	code, ok := weekdayCode(m[2])
	if !ok {
		return rrule.Rule{}, false
	}
	return rrule.Rule{Freq: rrule.Monthly, ByWeekday: []rrule.Weekday{code}, BySetPos: pos}, true
}

func monthDay(m []string) (rrule.Rule, bool) {
	d, err := strconv.Atoi(m[1])
	if err != nil || d < 1 || d > 31 {
		return rrule.Rule{}, false
	}
	return rrule.Rule{Freq: rrule.Monthly, ByMonthDay: d}, true
}

func yearlyOn(month, day string) (rrule.Rule, bool) {
	mo, ok := lookupMonth(month)
	if !ok {
		return rrule.Rule{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return rrule.Rule{}, false
	}
	if _, ok := calendarDate(2024, mo, d); !ok {
		return rrule.Rule{}, false
	}
	return rrule.Rule{Freq: rrule.Yearly, ByMonth: int(mo), ByMonthDay: d}, true
}

func everyN(n int, unit string) (rrule.Rule, bool) {
	switch strings.ToLower(unit) {
	case "day":
		return rrule.Rule{Freq: rrule.Daily, Interval: n}, true
	case "week":
		return rrule.Rule{Freq: rrule.Weekly, Interval: n}, true
	case "month":
		return rrule.Rule{Freq: rrule.Monthly, Interval: n}, true
	case "year":
		return rrule.Rule{Freq: rrule.Yearly, Interval: n}, true
	}
	code, ok := weekdayCode(unit)
	if !ok {
		return rrule.Rule{}, false
	}
	return rrule.Rule{Freq: rrule.Weekly, Interval: n, ByWeekday: []rrule.Weekday{code}}, true
}

// withDays attaches the weekdays of an "on ..." tail to a weekly rule that
// has none of its own.
func withDays(r rrule.Rule, days string) rrule.Rule {
	if days == "" || r.Freq != rrule.Weekly || len(r.ByWeekday) > 0 {
		return r
	}
	if set, ok := weekdaySet([]string{"", days}); ok {
		r.ByWeekday = set.ByWeekday
	}
	return r
}

var listSeparator = regexp.MustCompile(`(?i)\s*(?:,\s*and|,|\band\b|/|&)\s*`)

func weekdaySet(m []string) (rrule.Rule, bool) {
	seen := make(map[rrule.Weekday]bool)
	var days []rrule.Weekday
	for _, part := range listSeparator.Split(m[1], -1) {
		code, ok := weekdayCode(part)
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		days = append(days, code)
	}
	if len(days) == 0 {
		return rrule.Rule{}, false
	}
	return rrule.Rule{Freq: rrule.Weekly, ByWeekday: days}, true
}
