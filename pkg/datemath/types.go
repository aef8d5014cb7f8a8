package datemath

import (
	"time"

	"journal-ripples/pkg/rrule"
)

// DateMention is one explicit date found in free text.
// Date is the calendar day as UTC midnight; TimeStart is "15:04" or empty.
type DateMention struct {
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	TimeStart string    `json:"time_start,omitempty"`
	Phrase    string    `json:"phrase"`
}

// Recurrence is a recurrence phrase resolved into a rule and its first
// occurrence on or after the reference day.
type Recurrence struct {
	Rule   rrule.Rule `json:"-"`
	Next   time.Time  `json:"next"`
	Phrase string     `json:"phrase"`
}

type span struct {
	start, end int
	date       time.Time
}
