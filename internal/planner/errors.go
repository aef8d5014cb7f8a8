package planner

import "errors"

var (
	ErrInvalidTitle      = errors.New("title is required")
	ErrInvalidDate       = errors.New("date is required")
	ErrInvalidStartTime  = errors.New("start time must be HH:MM")
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
	ErrInvalidRange      = errors.New("invalid date range")
)
