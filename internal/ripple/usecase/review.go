package usecase

import (
	"context"
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	"journal-ripples/internal/ripple"
	repo "journal-ripples/internal/ripple/repository"
	"journal-ripples/pkg/rrule"
)

// Approve claims a pending ripple, materializes exactly one entity for it and
// links the entity id. A failed materialization puts the ripple back to pending.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, input ripple.ApproveInput) (ripple.ApproveOutput, error) {
	rp, err := uc.pending(ctx, sc, input.ID)
	if err != nil {
		return ripple.ApproveOutput{}, err
	}

	claimed, err := uc.repo.ClaimRipple(ctx, repo.ClaimRippleOptions{
		ID:        rp.ID,
		UserID:    sc.UserID,
		Status:    model.RippleStatusApproved,
		ClusterID: input.ClusterID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.Approve repo.ClaimRipple: %v", err)
		return ripple.ApproveOutput{}, err
	}
	if !claimed {
		return ripple.ApproveOutput{}, ripple.ErrNotPending
	}

	prevCluster := rp.ClusterID
	if input.ClusterID != "" {
		rp.ClusterID = input.ClusterID
	}
	due := effectiveDue(input.DueDate, rp)

	out, link, err := uc.materialize(ctx, sc, rp, due)
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.Approve materialize %s: %v", rp.ID, err)
		if rerr := uc.repo.ReleaseRipple(ctx, repo.ReleaseRippleOptions{ID: rp.ID, UserID: sc.UserID, ClusterID: prevCluster}); rerr != nil {
			uc.l.Errorf(ctx, "ripple.usecase.Approve repo.ReleaseRipple %s: %v", rp.ID, rerr)
		}
		return ripple.ApproveOutput{}, err
	}

	link.ID, link.UserID, link.DueDate = rp.ID, sc.UserID, &due
	if err := uc.repo.LinkRipple(ctx, link); err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.Approve repo.LinkRipple %s: %v", rp.ID, err)
		return ripple.ApproveOutput{}, err
	}

	rp.Status = model.RippleStatusApproved
	rp.DueDate = &due
	rp.TaskID, rp.AppointmentID, rp.EventID = link.TaskID, link.AppointmentID, link.EventID
	out.Ripple = rp
	return out, nil
}

// Dismiss claims a pending ripple as dismissed. Nothing is created.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) (model.Ripple, error) {
	rp, err := uc.pending(ctx, sc, id)
	if err != nil {
		return model.Ripple{}, err
	}

	claimed, err := uc.repo.ClaimRipple(ctx, repo.ClaimRippleOptions{ID: rp.ID, UserID: sc.UserID, Status: model.RippleStatusDismissed})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.Dismiss repo.ClaimRipple: %v", err)
		return model.Ripple{}, err
	}
	if !claimed {
		return model.Ripple{}, ripple.ErrNotPending
	}

	rp.Status = model.RippleStatusDismissed
	return rp, nil
}

// List returns the owner's ripples matching the filters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input ripple.ListInput) (ripple.ListOutput, error) {
	opt := repo.ListRipplesOptions{
		UserID:    sc.UserID,
		EntryID:   input.EntryID,
		ClusterID: input.ClusterID,
		Status:    input.Status,
	}
	if !input.Date.IsZero() {
		opt.EntryDate = rrule.Day(input.Date)
	}

	ripples, err := uc.repo.ListRipples(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.List repo.ListRipples: %v", err)
		return ripple.ListOutput{}, err
	}
	return ripple.ListOutput{Ripples: ripples}, nil
}

func (uc *implUseCase) pending(ctx context.Context, sc model.Scope, id string) (model.Ripple, error) {
	rp, err := uc.repo.GetOneRipple(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase repo.GetOneRipple: %v", err)
		return model.Ripple{}, err
	}
	if rp.ID == "" {
		return model.Ripple{}, ripple.ErrNotFound
	}
	if rp.Status != model.RippleStatusPending {
		return model.Ripple{}, ripple.ErrNotPending
	}
	return rp, nil
}

func (uc *implUseCase) materialize(ctx context.Context, sc model.Scope, rp model.Ripple, due time.Time) (ripple.ApproveOutput, repo.LinkRippleOptions, error) {
	var (
		out  ripple.ApproveOutput
		link repo.LinkRippleOptions
	)

	switch rp.Type {
	case model.RippleTypeTask, model.RippleTypeRecurringTask:
		t, err := uc.planner.CreateTask(ctx, sc, planner.CreateTaskInput{
			Title:          rp.Text,
			Details:        rp.OriginalContext,
			DueDate:        &due,
			Recurrence:     rp.Recurrence,
			ClusterID:      rp.ClusterID,
			SourceRippleID: rp.ID,
		})
		if err != nil {
			return out, link, err
		}
		out.Task, link.TaskID = &t, t.ID

	case model.RippleTypeAppointment:
		a, err := uc.planner.CreateAppointment(ctx, sc, planner.CreateAppointmentInput{
			Title:          rp.Text,
			Date:           due,
			StartTime:      rp.DueTime,
			Recurrence:     rp.Recurrence,
			ClusterID:      rp.ClusterID,
			SourceRippleID: rp.ID,
		})
		if err != nil {
			return out, link, err
		}
		out.Appointment, link.AppointmentID = &a, a.ID

	case model.RippleTypeImportantEvent:
		e, err := uc.planner.CreateEvent(ctx, sc, planner.CreateEventInput{
			Title:          rp.Text,
			Date:           due,
			ClusterID:      rp.ClusterID,
			SourceRippleID: rp.ID,
		})
		if err != nil {
			return out, link, err
		}
		out.Event, link.EventID = &e, e.ID

	default:
		return out, link, ripple.ErrUnknownType
	}
	return out, link, nil
}
