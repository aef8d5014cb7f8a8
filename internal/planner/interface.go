package planner

import (
	"context"

	"journal-ripples/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Materialization
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	CreateAppointment(ctx context.Context, sc model.Scope, input CreateAppointmentInput) (model.Appointment, error)
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (model.ImportantEvent, error)

	// Idempotent writes keyed on owner, title and date (plus start time for appointments).
	UpsertAppointment(ctx context.Context, sc model.Scope, input CreateAppointmentInput) (UpsertAppointmentOutput, error)
	UpsertEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (UpsertEventOutput, error)

	// Reads
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	ListAppointments(ctx context.Context, sc model.Scope, input ListAppointmentsInput) (ListAppointmentsOutput, error)
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) (ListEventsOutput, error)
}

// Publisher pushes a newly created appointment to an external calendar.
type Publisher interface {
	PublishAppointment(ctx context.Context, appt model.Appointment) error
}
