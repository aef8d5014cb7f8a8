package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the ISO calendar date layout used on the wire.
const DateFormat = "2006-01-02"

// MaxInterval bounds INTERVAL so stepping a date can never overflow.
const MaxInterval = 1000

var untilLayouts = []string{DateFormat, "20060102", "20060102T150405Z", "20060102T150405"}

// Validate checks the rule against the recurrence model constraints.
func (r Rule) Validate() error {
	switch r.Freq {
	case "":
		return ErrMissingFreq
	case Daily, Weekly, Monthly, Yearly:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFreq, r.Freq)
	}
	if r.Interval < 0 || r.Interval > MaxInterval {
		return ErrInvalidInterval
	}
	for _, w := range r.ByWeekday {
		if _, ok := w.Time(); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWeekday, w)
		}
	}
	if r.ByMonthDay < 0 || r.ByMonthDay > 31 {
		return ErrInvalidMonthDay
	}
	if r.BySetPos != 0 {
		switch r.BySetPos {
		case 1, 2, 3, 4, -1:
		default:
			return ErrInvalidSetPos
		}
		if len(r.ByWeekday) != 1 {
			return ErrInvalidSetPos
		}
	}
	if r.ByMonth < 0 || r.ByMonth > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// String renders the rule in the semicolon-joined key=value wire format.
// Unset keys are omitted; INTERVAL is omitted when it is 1.
func (r Rule) String() string {
	if r.IsZero() {
		return ""
	}
	parts := []string{"FREQ=" + string(r.Freq)}
	if r.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	if len(r.ByWeekday) > 0 {
		codes := make([]string, len(r.ByWeekday))
		for i, w := range r.ByWeekday {
			codes[i] = string(w)
		}
		parts = append(parts, "BYDAY="+strings.Join(codes, ","))
	}
	if r.ByMonthDay > 0 {
		parts = append(parts, "BYMONTHDAY="+strconv.Itoa(r.ByMonthDay))
	}
	if r.BySetPos != 0 {
		parts = append(parts, "BYSETPOS="+strconv.Itoa(r.BySetPos))
	}
	if r.ByMonth > 0 {
		parts = append(parts, "BYMONTH="+strconv.Itoa(r.ByMonth))
	}
	if !r.Until.IsZero() {
		parts = append(parts, "UNTIL="+r.Until.Format(DateFormat))
	}
	return strings.Join(parts, ";")
}

// Parse reads the wire format. An optional "RRULE:" prefix is accepted, unknown
// keys are ignored and RFC 5545 ordinal BYDAY values ("-1FR") are folded into BYSETPOS.
func Parse(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "RRULE:"), "rrule:")

	var r Rule
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return Rule{}, fmt.Errorf("%w: %q", ErrMalformed, pair)
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case "FREQ":
			r.Freq = Frequency(strings.ToUpper(value))
		case "INTERVAL":
			r.Interval, err = strconv.Atoi(value)
			if err == nil && (r.Interval < 1 || r.Interval > MaxInterval) {
				err = ErrInvalidInterval
			}
		case "BYDAY":
			err = r.parseByDay(value)
		case "BYMONTHDAY":
			r.ByMonthDay, err = strconv.Atoi(value)
			if err == nil && (r.ByMonthDay < 1 || r.ByMonthDay > 31) {
				err = ErrInvalidMonthDay
			}
		case "BYSETPOS":
			r.BySetPos, err = strconv.Atoi(value)
		case "BYMONTH":
			r.ByMonth, err = strconv.Atoi(value)
			if err == nil && (r.ByMonth < 1 || r.ByMonth > 12) {
				err = ErrInvalidMonth
			}
		case "UNTIL":
			r.Until, err = parseUntil(value)
		}
		if err != nil {
			return Rule{}, fmt.Errorf("rrule: %s: %w", key, err)
		}
	}

	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func (r *Rule) parseByDay(value string) error {
	for _, raw := range strings.Split(value, ",") {
		raw = strings.ToUpper(strings.TrimSpace(raw))
		if raw == "" {
			continue
		}
		if len(raw) > 2 {
			pos, err := strconv.Atoi(raw[:len(raw)-2])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidWeekday, raw)
			}
			if r.BySetPos == 0 {
				r.BySetPos = pos
			}
			raw = raw[len(raw)-2:]
		}
		w := Weekday(raw)
		if _, ok := w.Time(); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWeekday, raw)
		}
		r.ByWeekday = append(r.ByWeekday, w)
	}
	return nil
}

func parseUntil(value string) (time.Time, error) {
	for _, layout := range untilLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, ErrInvalidUntil
}

// Day truncates t to its calendar day, expressed as UTC midnight. The wall-clock
// date of t is kept; no zone conversion takes place.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RFC5545 renders the rule as an iCalendar RRULE property line. It differs
// from String only in the RRULE: prefix and the compact UNTIL date.
func (r Rule) RFC5545() string {
	if r.IsZero() {
		return ""
	}
	s := r
	s.Until = time.Time{}
	line := "RRULE:" + s.String()
	if !r.Until.IsZero() {
		line += ";UNTIL=" + r.Until.Format("20060102")
	}
	return line
}
