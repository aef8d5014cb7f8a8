package datemath

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"journal-ripples/pkg/rrule"
)

type resolver struct {
	re      *regexp.Regexp
	resolve func(m []string, ref time.Time) (time.Time, bool)
}

// resolvers are tried over each sentence; overlaps are settled by position, so
// their order only matters for identical spans.
var resolvers = []resolver{
	{
		re: regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		resolve: func(m []string, _ time.Time) (time.Time, bool) {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			return calendarDate(y, time.Month(mo), d)
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			mo, _ := strconv.Atoi(m[1])
			d, _ := strconv.Atoi(m[2])
			return withYear(ref, m[3], time.Month(mo), d)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})` + daySuffix + `(?:,?\s+(\d{4}))?\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			mo, _ := lookupMonth(m[1])
			d, _ := strconv.Atoi(m[2])
			return withYear(ref, m[3], mo, d)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})` + daySuffix + `\s+(?:of\s+)?(` + monthNames + `)\b(?:,?\s+(\d{4})\b)?`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			mo, _ := lookupMonth(m[2])
			d, _ := strconv.Atoi(m[1])
			return withYear(ref, m[3], mo, d)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|yesterday)\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			switch strings.ToLower(m[1]) {
			case "tomorrow":
				return ref.AddDate(0, 0, 1), true
			case "yesterday":
				return ref.AddDate(0, 0, -1), true
			}
			return ref, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(this|next|on|coming|this coming)\s+(` + weekdayAny + `)\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			wd, ok := lookupWeekday(m[2])
			if !ok {
				return time.Time{}, false
			}
			if strings.EqualFold(m[1], "next") {
				return nextWeekday(ref, wd), true
			}
			return upcoming(ref, wd), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(` + weekdayNames + `)\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			wd, ok := lookupWeekday(m[1])
			return upcoming(ref, wd), ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bin\s+(` + numberWords + `)\s+(day|week|month|year)s?\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			n, ok := amount(m[1])
			if !ok {
				return time.Time{}, false
			}
			return offset(ref, strings.ToLower(m[2]), n), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext\s+(week|month|year)\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			return offset(ref, strings.ToLower(m[1]), 1), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(this|next)\s+weekend\b`),
		resolve: func(m []string, ref time.Time) (time.Time, bool) {
			sat := upcoming(ref, time.Saturday)
			next := strings.EqualFold(m[1], "next")
			switch {
			case next && ref.Weekday() == time.Sunday:
			case next:
				sat = sat.AddDate(0, 0, 7)
			case ref.Weekday() == time.Sunday:
				sat = ref
			}
			return sat, true
		},
	},
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?;]+(?:\s+|$)|\n+`)
	timeOfDay     = regexp.MustCompile(`(?i)\b(?:at\s+|@\s*)?(?:(\d{1,2})(?::(\d{2}))?\s*(am|pm)|(\d{1,2}):(\d{2})|(noon|midnight))`)
	meridiem      = regexp.MustCompile(`(?i)(\d\s*)([ap])\.m\.`)
	leadingWords  = regexp.MustCompile(`(?i)(?:\s+(?:on|by|at|for|due|before|until|from|starting))+\s*$`)
)

// ExtractDates finds explicit dates, one sentence at a time, relative to ref
// interpreted in the parser's timezone. Results are deduplicated by
// (lowercased title, date) and keep text order.
func (p *Parser) ExtractDates(text string, ref time.Time) []DateMention {
	day := p.refDay(ref)
	text = FoldMeridiem(text)

	var out []DateMention
	seen := make(map[string]struct{})
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		start := clockTime(sentence)
		for _, s := range findDates(sentence, day) {
			m := DateMention{
				Title:     title(sentence, s.start),
				Date:      s.date,
				TimeStart: start,
				Phrase:    sentence[s.start:s.end],
			}
			key := strings.ToLower(m.Title) + "|" + m.Date.Format(rrule.DateFormat)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// FoldMeridiem rewrites "7 p.m." as "7 pm" so the dots are not read as a
// sentence end. The full stop is kept when the meridiem closes a sentence,
// that is when it is followed by the end of text or a capitalised word.
func FoldMeridiem(s string) string {
	idx := meridiem.FindAllStringSubmatchIndex(s, -1)
	if idx == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range idx {
		b.WriteString(s[last:m[3]])
		b.WriteString(strings.ToLower(s[m[4]:m[5]]) + "m")
		if closesSentence(s[m[1]:]) {
			b.WriteByte('.')
		}
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func closesSentence(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" || rest[0] == '\n' {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// findDates returns non-overlapping date spans of s in order; at equal start
// the longer span wins.
func findDates(s string, ref time.Time) []span {
	var all []span
	for _, r := range resolvers {
		for _, idx := range r.re.FindAllStringSubmatchIndex(s, -1) {
			m := submatches(s, idx)
			if d, ok := r.resolve(m, ref); ok {
				all = append(all, span{start: idx[0], end: idx[1], date: d})
			}
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].start != all[j].start {
			return all[i].start < all[j].start
		}
		return all[i].end > all[j].end
	})

	var out []span
	end := -1
	for _, sp := range all {
		if sp.start < end {
			continue
		}
		out = append(out, sp)
		end = sp.end
	}
	return out
}

func submatches(s string, idx []int) []string {
	m := make([]string, len(idx)/2)
	for i := range m {
		if idx[2*i] >= 0 {
			m[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return m
}

// title is the text before the date phrase with time-of-day and trailing
// connector words removed, or the whole sentence when the phrase leads.
func title(sentence string, start int) string {
	head := strings.TrimSpace(sentence[:start])
	if head == "" {
		return strings.TrimSpace(sentence)
	}
	head = strings.TrimSpace(timeOfDay.ReplaceAllString(head, ""))
	head = leadingWords.ReplaceAllString(" "+head, "")
	head = strings.TrimRight(strings.TrimSpace(head), ",:-")
	if head == "" {
		return strings.TrimSpace(sentence)
	}
	return head
}

// clockTime returns the first time of day in s as "15:04".
func clockTime(s string) string {
	m := timeOfDay.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	var hour, minute int
	switch {
	case m[6] != "":
		if strings.EqualFold(m[6], "noon") {
			hour = 12
		}
	case m[4] != "":
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
	default:
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 {
			return ""
		}
		pm := strings.HasPrefix(strings.ToLower(m[3]), "p")
		switch {
		case pm && hour != 12:
			hour += 12
		case !pm && hour == 12:
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return ""
	}
	return time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04")
}

// withYear resolves a month/day with an optional year. Without a year the
// date rolls to next year once it has passed.
func withYear(ref time.Time, year string, month time.Month, day int) (time.Time, bool) {
	if year != "" {
		y, _ := strconv.Atoi(year)
		if y < 100 {
			y += 2000
		}
		return calendarDate(y, month, day)
	}
	d, ok := calendarDate(ref.Year(), month, day)
	if !ok {
		// Feb 29 outside a leap year
		return calendarDate(ref.Year()+1, month, day)
	}
	if d.Before(ref) {
		if next, ok := calendarDate(ref.Year()+1, month, day); ok {
			return next, true
		}
	}
	return d, true
}

// nextWeekday is strictly after ref: "next monday" on a Monday is a week out.
func nextWeekday(ref time.Time, wd time.Weekday) time.Time {
	days := int(wd) - int(ref.Weekday())
	if days <= 0 {
		days += 7
	}
	return ref.AddDate(0, 0, days)
}

func offset(ref time.Time, unit string, n int) time.Time {
	switch unit {
	case "week":
		return ref.AddDate(0, 0, 7*n)
	case "month":
		return ref.AddDate(0, n, 0)
	case "year":
		return ref.AddDate(n, 0, 0)
	}
	return ref.AddDate(0, 0, n)
}
