package rrule

import "time"

// Expand returns every occurrence of r, anchored at anchor, that falls inside
// [from, to] (both inclusive, compared by calendar day) and not after r.Until.
// Occurrences never precede the anchor. An invalid rule yields no occurrences.
func Expand(r Rule, anchor, from, to time.Time) []time.Time {
	if r.Validate() != nil {
		return nil
	}

	anchor, from, to = Day(anchor), Day(from), Day(to)
	if !r.Until.IsZero() {
		if until := Day(r.Until); until.Before(to) {
			to = until
		}
	}
	if from.Before(anchor) {
		from = anchor
	}
	if to.Before(from) {
		return nil
	}

	switch r.Freq {
	case Daily:
		return expandDaily(r, anchor, from, to)
	case Weekly:
		return expandWeekly(r, anchor, from, to)
	case Monthly:
		return expandMonthly(r, anchor, from, to)
	case Yearly:
		return expandYearly(r, anchor, from, to)
	}
	return nil
}

// ExpandISO is Expand with the dates rendered as ISO calendar dates.
func ExpandISO(r Rule, anchor, from, to time.Time) []string {
	dates := Expand(r, anchor, from, to)
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateFormat)
	}
	return out
}

// nextWindows are the successively wider look-ahead windows tried by Next.
// The last one covers the longest possible gap (Feb 29 in a yearly rule).
var nextWindows = []int{62, 400, 8*366 + 1}

// Next returns the first occurrence on or after from.
func Next(r Rule, anchor, from time.Time) (time.Time, bool) {
	from = Day(from)
	for _, days := range nextWindows {
		if dates := Expand(r, anchor, from, from.AddDate(0, 0, days)); len(dates) > 0 {
			return dates[0], true
		}
	}
	return time.Time{}, false
}

func expandDaily(r Rule, anchor, from, to time.Time) []time.Time {
	step := r.interval()
	offset := daysBetween(anchor, from)
	k := (offset + step - 1) / step

	var out []time.Time
	for d := anchor.AddDate(0, 0, k*step); !d.After(to); {
		out = append(out, d)
		next := d.AddDate(0, 0, step)
		if !next.After(d) {
			break
		}
		d = next
	}
	return out
}

func expandWeekly(r Rule, anchor, from, to time.Time) []time.Time {
	days := weekdaySet(r.ByWeekday)
	if len(days) == 0 {
		days[anchor.Weekday()] = true
	}
	step := r.interval()
	anchorWeek := mondayOf(anchor)

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !days[d.Weekday()] {
			continue
		}
		if step > 1 && (daysBetween(anchorWeek, mondayOf(d))/7)%step != 0 {
			continue
		}
		out = append(out, d)
	}
	return out
}

func expandMonthly(r Rule, anchor, from, to time.Time) []time.Time {
	step := r.interval()
	first := firstOfMonth(anchor)

	// Jump straight to the last stepped month at or before the window start.
	skip := monthsBetween(first, firstOfMonth(from)) / step * step

	var out []time.Time
	prev := time.Time{}
	for m := skip; ; m += step {
		month := first.AddDate(0, m, 0)
		if month.After(to) || !month.After(prev) {
			break
		}
		prev = month
		if r.ByMonth > 0 && int(month.Month()) != r.ByMonth {
			continue
		}
		for _, d := range datesInMonth(r, anchor, month) {
			if d.Before(from) || d.After(to) {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}

func expandYearly(r Rule, anchor, from, to time.Time) []time.Time {
	step := r.interval()
	month := anchor.Month()
	if r.ByMonth > 0 {
		month = time.Month(r.ByMonth)
	}

	skip := 0
	if from.Year() > anchor.Year() {
		skip = (from.Year() - anchor.Year()) / step * step
	}

	var out []time.Time
	for y := anchor.Year() + skip; y <= to.Year() && y >= anchor.Year(); y += step {
		monthStart := time.Date(y, month, 1, 0, 0, 0, 0, time.UTC)
		var candidates []time.Time
		if r.BySetPos != 0 && len(r.ByWeekday) == 1 {
			if d, ok := nthWeekday(monthStart, r.ByWeekday[0], r.BySetPos); ok {
				candidates = append(candidates, d)
			}
		} else {
			day := anchor.Day()
			if r.ByMonthDay > 0 {
				day = r.ByMonthDay
			}
			if day <= daysIn(monthStart) {
				candidates = append(candidates, monthStart.AddDate(0, 0, day-1))
			}
		}
		for _, d := range candidates {
			if d.Before(from) || d.After(to) {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}

// datesInMonth lists the rule's dates for one month, in ascending order.
func datesInMonth(r Rule, anchor, month time.Time) []time.Time {
	switch {
	case r.BySetPos != 0 && len(r.ByWeekday) == 1:
		if d, ok := nthWeekday(month, r.ByWeekday[0], r.BySetPos); ok {
			return []time.Time{d}
		}
		return nil
	case r.ByMonthDay > 0:
		if r.ByMonthDay > daysIn(month) {
			return nil
		}
		return []time.Time{month.AddDate(0, 0, r.ByMonthDay-1)}
	case len(r.ByWeekday) > 0:
		days := weekdaySet(r.ByWeekday)
		var out []time.Time
		for d := month; d.Month() == month.Month(); d = d.AddDate(0, 0, 1) {
			if days[d.Weekday()] {
				out = append(out, d)
			}
		}
		return out
	default:
		if anchor.Day() > daysIn(month) {
			return nil
		}
		return []time.Time{month.AddDate(0, 0, anchor.Day()-1)}
	}
}

// nthWeekday returns the pos-th (1..4) or last (-1) given weekday of the month.
func nthWeekday(month time.Time, code Weekday, pos int) (time.Time, bool) {
	wd, ok := code.Time()
	if !ok {
		return time.Time{}, false
	}
	if pos < 0 {
		last := month.AddDate(0, 1, -1)
		offset := (int(last.Weekday()) - int(wd) + 7) % 7
		return last.AddDate(0, 0, -offset), true
	}
	offset := (int(wd) - int(month.Weekday()) + 7) % 7
	d := month.AddDate(0, 0, offset+7*(pos-1))
	if d.Month() != month.Month() {
		return time.Time{}, false
	}
	return d, true
}

func weekdaySet(codes []Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(codes))
	for _, c := range codes {
		if wd, ok := c.Time(); ok {
			set[wd] = true
		}
	}
	return set
}

func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func firstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysIn(month time.Time) int {
	return firstOfMonth(month).AddDate(0, 1, -1).Day()
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
