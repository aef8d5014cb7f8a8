package rrule

import (
	"fmt"
	"strings"
	"time"
)

var ordinalWords = map[int]string{1: "first", 2: "second", 3: "third", 4: "fourth", -1: "last"}

// Describe renders a short human label, e.g. "every 2 weeks on Monday".
func (r Rule) Describe() string {
	if r.IsZero() {
		return ""
	}
	n := r.interval()

	var label string
	switch r.Freq {
	case Daily:
		label = every(n, "day", "daily")
	case Weekly:
		label = describeWeekly(r, n)
	case Monthly:
		label = every(n, "month", "monthly")
		if n == 3 {
			label = "quarterly"
		}
		switch {
		case r.BySetPos != 0 && len(r.ByWeekday) == 1:
			label += fmt.Sprintf(" on the %s %s", ordinalWords[r.BySetPos], dayName(r.ByWeekday[0]))
		case r.ByMonthDay > 0:
			label += fmt.Sprintf(" on day %d", r.ByMonthDay)
		}
	case Yearly:
		label = every(n, "year", "yearly")
		if r.ByMonth > 0 && r.ByMonthDay > 0 {
			label += fmt.Sprintf(" on %s %d", time.Month(r.ByMonth), r.ByMonthDay)
		}
	}

	if !r.Until.IsZero() {
		label += " until " + r.Until.Format(DateFormat)
	}
	return label
}

func describeWeekly(r Rule, n int) string {
	codes := make([]string, len(r.ByWeekday))
	for i, w := range r.ByWeekday {
		codes[i] = string(w)
	}
	joined := strings.Join(codes, ",")
	if n == 1 {
		switch joined {
		case "MO,TU,WE,TH,FR":
			return "every weekday"
		case "SA,SU":
			return "every weekend"
		}
	}

	label := every(n, "week", "weekly")
	if len(r.ByWeekday) > 0 {
		names := make([]string, len(r.ByWeekday))
		for i, w := range r.ByWeekday {
			names[i] = dayName(w)
		}
		label += " on " + strings.Join(names, ", ")
	}
	return label
}

func every(n int, unit, single string) string {
	if n == 1 {
		return single
	}
	if n == 2 {
		return "every other " + unit
	}
	return fmt.Sprintf("every %d %ss", n, unit)
}

func dayName(w Weekday) string {
	if wd, ok := w.Time(); ok {
		return wd.String()
	}
	return string(w)
}
