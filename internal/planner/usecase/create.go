package usecase

import (
	"context"

	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	repo "journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/rrule"
)

// CreateTask persists a task.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input planner.CreateTaskInput) (model.Task, error) {
	title := normalizeTitle(input.Title)
	if title == "" {
		return model.Task{}, planner.ErrInvalidTitle
	}
	recurrence, err := canonicalRule(input.Recurrence)
	if err != nil {
		return model.Task{}, err
	}

	opt := repo.CreateTaskOptions{
		UserID:         sc.UserID,
		Title:          title,
		Details:        input.Details,
		Recurrence:     recurrence,
		ClusterID:      input.ClusterID,
		SourceRippleID: input.SourceRippleID,
	}
	if input.DueDate != nil {
		d := rrule.Day(*input.DueDate)
		opt.DueDate = &d
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.CreateTask repo.CreateTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

// CreateAppointment persists an appointment, or a series when Recurrence is set,
// and publishes it when a publisher is configured.
func (uc *implUseCase) CreateAppointment(ctx context.Context, sc model.Scope, input planner.CreateAppointmentInput) (model.Appointment, error) {
	opt, err := uc.appointmentOptions(sc, input)
	if err != nil {
		return model.Appointment{}, err
	}
	return uc.createAppointment(ctx, opt)
}

// CreateEvent persists an important event.
func (uc *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input planner.CreateEventInput) (model.ImportantEvent, error) {
	opt, err := eventOptions(sc, input)
	if err != nil {
		return model.ImportantEvent{}, err
	}

	e, err := uc.repo.CreateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.CreateEvent repo.CreateEvent: %v", err)
		return model.ImportantEvent{}, err
	}
	return e, nil
}

func (uc *implUseCase) createAppointment(ctx context.Context, opt repo.CreateAppointmentOptions) (model.Appointment, error) {
	a, err := uc.repo.CreateAppointment(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.CreateAppointment repo.CreateAppointment: %v", err)
		return model.Appointment{}, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishAppointment(ctx, a); err != nil {
			uc.l.Warnf(ctx, "planner.usecase.CreateAppointment publisher.PublishAppointment %s: %v", a.ID, err)
		}
	}
	return a, nil
}

func (uc *implUseCase) appointmentOptions(sc model.Scope, input planner.CreateAppointmentInput) (repo.CreateAppointmentOptions, error) {
	title := normalizeTitle(input.Title)
	if title == "" {
		return repo.CreateAppointmentOptions{}, planner.ErrInvalidTitle
	}
	if input.Date.IsZero() {
		return repo.CreateAppointmentOptions{}, planner.ErrInvalidDate
	}
	start, err := normalizeStartTime(input.StartTime)
	if err != nil {
		return repo.CreateAppointmentOptions{}, err
	}
	recurrence, err := canonicalRule(input.Recurrence)
	if err != nil {
		return repo.CreateAppointmentOptions{}, err
	}

	return repo.CreateAppointmentOptions{
		UserID:         sc.UserID,
		Title:          title,
		Date:           rrule.Day(input.Date),
		StartTime:      start,
		Recurrence:     recurrence,
		ClusterID:      input.ClusterID,
		SourceRippleID: input.SourceRippleID,
	}, nil
}

func eventOptions(sc model.Scope, input planner.CreateEventInput) (repo.CreateEventOptions, error) {
	title := normalizeTitle(input.Title)
	if title == "" {
		return repo.CreateEventOptions{}, planner.ErrInvalidTitle
	}
	if input.Date.IsZero() {
		return repo.CreateEventOptions{}, planner.ErrInvalidDate
	}
	return repo.CreateEventOptions{
		UserID:         sc.UserID,
		Title:          title,
		Date:           rrule.Day(input.Date),
		ClusterID:      input.ClusterID,
		SourceRippleID: input.SourceRippleID,
	}, nil
}
