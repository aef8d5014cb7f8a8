package usecase

import (
	"regexp"
	"strings"
	"time"

	"journal-ripples/internal/planner"
	"journal-ripples/pkg/rrule"
)

var startTimePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeStartTime accepts "H:MM" or "HH:MM" and returns "HH:MM".
// Empty means all-day.
func normalizeStartTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	m := startTimePattern.FindStringSubmatch(s)
	if m == nil {
		return "", planner.ErrInvalidStartTime
	}
	if len(m[1]) == 1 {
		m[1] = "0" + m[1]
	}
	return m[1] + ":" + m[2], nil
}

// canonicalRule validates a wire-format rule and re-renders it. A rule that
// cannot be parsed is never persisted.
func canonicalRule(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	r, err := rrule.Parse(s)
	if err != nil {
		return "", planner.ErrInvalidRecurrence
	}
	return r.String(), nil
}

func dayRange(from, to time.Time) (time.Time, time.Time, error) {
	if from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, planner.ErrInvalidRange
	}
	from, to = rrule.Day(from), rrule.Day(to)
	if to.Before(from) {
		return time.Time{}, time.Time{}, planner.ErrInvalidRange
	}
	return from, to, nil
}
