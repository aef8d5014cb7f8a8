package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Day is a calendar day. Days are stored as UTC midnight, so the UTC date is
// rendered regardless of the server zone.
type Day time.Time

// MarshalJSON implements json.Marshaler for Day.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// DayPtr converts an optional day; nil stays nil so omitempty drops it.
func DayPtr(t *time.Time) *Day {
	if t == nil {
		return nil
	}
	d := Day(*t)
	return &d
}

// Timestamp is an instant rendered as RFC 3339 in UTC.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339))
}
