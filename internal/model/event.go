package model

import "time"

// Appointment is a dated meeting. A non-empty Recurrence makes it a series
// anchored at Date whose instances are computed on read.
type Appointment struct {
	ID             string
	UserID         string
	Title          string
	Date           time.Time
	StartTime      string // "15:04" or empty for all-day
	Recurrence     string
	ClusterID      string
	SourceRippleID string
	CreatedAt      time.Time
}

// IsSeries reports whether the appointment carries a recurrence rule.
func (a Appointment) IsSeries() bool {
	return a.Recurrence != ""
}

// ImportantEvent is a dated occasion such as a birthday.
type ImportantEvent struct {
	ID             string
	UserID         string
	Title          string
	Date           time.Time
	ClusterID      string
	SourceRippleID string
	CreatedAt      time.Time
}

// Occurrence is one row of an appointment listing. Virtual rows come from a
// series expansion and have no persisted record of their own.
type Occurrence struct {
	AppointmentID string
	Title         string
	Date          time.Time
	StartTime     string
	Virtual       bool
}
