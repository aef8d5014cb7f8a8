package datemath

import (
	"strconv"
	"strings"
	"time"

	"journal-ripples/pkg/rrule"
)

const (
	weekdayNames = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	weekdayAny   = weekdayNames + `|mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun`
	monthNames   = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	numberWords  = `\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve`
	ordinalWords = `first|second|third|fourth|last|1st|2nd|3rd|4th`
	daySuffix    = `(?:st|nd|rd|th)?`
)

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var numbers = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var ordinals = map[string]int{
	"first": 1, "1st": 1, "second": 2, "2nd": 2, "third": 3, "3rd": 3,
	"fourth": 4, "4th": 4, "last": -1,
}

func lookupWeekday(s string) (time.Weekday, bool) {
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

func weekdayCode(s string) (rrule.Weekday, bool) {
	d, ok := lookupWeekday(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !ok {
		return "", false
	}
	return rrule.WeekdayOf(d), true
}

func lookupMonth(s string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSuffix(s, "."))]
	return m, ok
}

// amount reads a count written as digits or a number word, up to
// rrule.MaxInterval.
func amount(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := numbers[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > rrule.MaxInterval {
		return 0, false
	}
	return n, true
}

// calendarDate builds a date and rejects values time.Date would normalize.
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// upcoming returns the first wd on or after ref.
func upcoming(ref time.Time, wd time.Weekday) time.Time {
	return ref.AddDate(0, 0, (int(wd)-int(ref.Weekday())+7)%7)
}
