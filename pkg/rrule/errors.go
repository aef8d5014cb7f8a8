package rrule

import "errors"

var (
	ErrMissingFreq     = errors.New("rrule: FREQ is required")
	ErrUnknownFreq     = errors.New("rrule: unknown FREQ")
	ErrInvalidInterval = errors.New("rrule: INTERVAL must be within 1..1000")
	ErrInvalidWeekday  = errors.New("rrule: invalid BYDAY code")
	ErrInvalidMonthDay = errors.New("rrule: BYMONTHDAY must be within 1..31")
	ErrInvalidSetPos   = errors.New("rrule: BYSETPOS must be one of 1,2,3,4,-1 with exactly one BYDAY")
	ErrInvalidMonth    = errors.New("rrule: BYMONTH must be within 1..12")
	ErrInvalidUntil    = errors.New("rrule: UNTIL must be an ISO date")
	ErrMalformed       = errors.New("rrule: malformed key=value pair")
)
