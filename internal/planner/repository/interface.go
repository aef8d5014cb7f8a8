package repository

import (
	"context"

	"journal-ripples/internal/model"
)

// Repository is the composed interface for the planner data store.
type Repository interface {
	TaskRepository
	AppointmentRepository
	EventRepository
}

// TaskRepository defines data access for materialized tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// AppointmentRepository defines data access for appointments and series.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, opt CreateAppointmentOptions) (model.Appointment, error)
	GetOneAppointment(ctx context.Context, opt GetOneAppointmentOptions) (model.Appointment, error)
	ListAppointments(ctx context.Context, opt ListAppointmentsOptions) ([]model.Appointment, error)
}

// EventRepository defines data access for important events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.ImportantEvent, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.ImportantEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.ImportantEvent, error)
}
