package usecase

import (
	"context"

	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	repo "journal-ripples/internal/planner/repository"
)

// UpsertAppointment creates the appointment unless one with the same owner,
// title, date and start time already exists.
func (uc *implUseCase) UpsertAppointment(ctx context.Context, sc model.Scope, input planner.CreateAppointmentInput) (planner.UpsertAppointmentOutput, error) {
	opt, err := uc.appointmentOptions(sc, input)
	if err != nil {
		return planner.UpsertAppointmentOutput{}, err
	}

	existing, err := uc.repo.GetOneAppointment(ctx, repo.GetOneAppointmentOptions{
		UserID:    opt.UserID,
		Title:     opt.Title,
		Date:      opt.Date,
		StartTime: opt.StartTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.UpsertAppointment repo.GetOneAppointment: %v", err)
		return planner.UpsertAppointmentOutput{}, err
	}
	if existing.ID != "" {
		return planner.UpsertAppointmentOutput{Appointment: existing}, nil
	}

	a, err := uc.createAppointment(ctx, opt)
	if err != nil {
		return planner.UpsertAppointmentOutput{}, err
	}
	return planner.UpsertAppointmentOutput{Appointment: a, Created: true}, nil
}

// UpsertEvent creates the event unless one with the same owner, title and
// date already exists.
func (uc *implUseCase) UpsertEvent(ctx context.Context, sc model.Scope, input planner.CreateEventInput) (planner.UpsertEventOutput, error) {
	opt, err := eventOptions(sc, input)
	if err != nil {
		return planner.UpsertEventOutput{}, err
	}

	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{
		UserID: opt.UserID,
		Title:  opt.Title,
		Date:   opt.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.UpsertEvent repo.GetOneEvent: %v", err)
		return planner.UpsertEventOutput{}, err
	}
	if existing.ID != "" {
		return planner.UpsertEventOutput{Event: existing}, nil
	}

	e, err := uc.repo.CreateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.UpsertEvent repo.CreateEvent: %v", err)
		return planner.UpsertEventOutput{}, err
	}
	return planner.UpsertEventOutput{Event: e, Created: true}, nil
}
