package planner

import (
	"time"

	"journal-ripples/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title          string
	Details        string
	DueDate        *time.Time
	Recurrence     string
	ClusterID      string
	SourceRippleID string
}

type CreateAppointmentInput struct {
	Title          string
	Date           time.Time
	StartTime      string
	Recurrence     string
	ClusterID      string
	SourceRippleID string
}

type CreateEventInput struct {
	Title          string
	Date           time.Time
	ClusterID      string
	SourceRippleID string
}

type ListTasksInput struct {
	ClusterID string
	Limit     int
}

// ListAppointmentsInput selects a closed day range. IncludeSeries adds the
// virtual occurrences of recurring appointments.
type ListAppointmentsInput struct {
	From          time.Time
	To            time.Time
	IncludeSeries bool
}

type ListEventsInput struct {
	From time.Time
	To   time.Time
}

// --- UseCase Outputs ---

type UpsertAppointmentOutput struct {
	Appointment model.Appointment
	Created     bool
}

type UpsertEventOutput struct {
	Event   model.ImportantEvent
	Created bool
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type ListAppointmentsOutput struct {
	Occurrences []model.Occurrence
}

type ListEventsOutput struct {
	Events []model.ImportantEvent
}
