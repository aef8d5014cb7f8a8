package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID         string
	Title          string
	Details        string
	DueDate        *time.Time
	Recurrence     string
	ClusterID      string
	SourceRippleID string
}

// ListTasksOptions filters tasks of one owner, newest first.
type ListTasksOptions struct {
	UserID    string
	ClusterID string
	Limit     int
}

// CreateAppointmentOptions holds parameters for inserting a new Appointment.
type CreateAppointmentOptions struct {
	UserID         string
	Title          string
	Date           time.Time
	StartTime      string
	Recurrence     string
	ClusterID      string
	SourceRippleID string
}

// GetOneAppointmentOptions is the upsert key. Title compares case-insensitively.
type GetOneAppointmentOptions struct {
	UserID    string
	Title     string
	Date      time.Time
	StartTime string
}

// ListAppointmentsOptions selects one-offs dated in [From, To], or with
// Series set, every series anchored on or before To.
type ListAppointmentsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
	Series bool
}

// CreateEventOptions holds parameters for inserting a new ImportantEvent.
type CreateEventOptions struct {
	UserID         string
	Title          string
	Date           time.Time
	ClusterID      string
	SourceRippleID string
}

// GetOneEventOptions is the upsert key. Title compares case-insensitively.
type GetOneEventOptions struct {
	UserID string
	Title  string
	Date   time.Time
}

// ListEventsOptions selects events dated in [From, To].
type ListEventsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}
