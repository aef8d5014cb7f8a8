package usecase

import (
	"context"
	"strings"

	"journal-ripples/internal/model"
	"journal-ripples/internal/ripple"
	repo "journal-ripples/internal/ripple/repository"
	"journal-ripples/pkg/rrule"
)

// Create stores one ripple per draft and a suggested task for each task-like
// one. Inserts are independent: a failed draft is logged and dropped while
// the rest are kept.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input ripple.CreateInput) (ripple.CreateOutput, error) {
	if input.EntryID == "" {
		return ripple.CreateOutput{}, ripple.ErrEntryRequired
	}
	entryDate := rrule.Day(input.EntryDate)

	var out ripple.CreateOutput
	for _, d := range input.Drafts {
		text := strings.TrimSpace(d.Text)
		if text == "" || !d.Type.IsValid() {
			uc.l.Warnf(ctx, "ripple.usecase.Create: skipping draft %q of type %q", d.Text, d.Type)
			out.Dropped++
			continue
		}

		rp, err := uc.repo.CreateRipple(ctx, repo.CreateRippleOptions{
			UserID:          sc.UserID,
			EntryID:         input.EntryID,
			EntryDate:       entryDate,
			Text:            text,
			OriginalContext: d.OriginalContext,
			Type:            d.Type,
			Confidence:      d.Confidence,
			DueDate:         dayPtr(d.DueDate),
			DueTime:         d.DueTime,
			Recurrence:      d.Recurrence,
			ClusterID:       d.ClusterID,
		})
		if err != nil {
			uc.l.Warnf(ctx, "ripple.usecase.Create repo.CreateRipple %q: %v", d.OriginalContext, err)
			out.Dropped++
			continue
		}
		out.Ripples = append(out.Ripples, rp)

		if !rp.Type.IsTaskLike() {
			continue
		}
		st, err := uc.repo.CreateSuggestedTask(ctx, repo.CreateSuggestedTaskOptions{
			UserID:      sc.UserID,
			RippleID:    rp.ID,
			EntryID:     rp.EntryID,
			Title:       rp.Text,
			Priority:    priorityOr(d.Priority),
			DueDate:     rp.DueDate,
			RepeatLabel: repeatLabel(rp.Recurrence),
			ClusterID:   rp.ClusterID,
		})
		if err != nil {
			uc.l.Warnf(ctx, "ripple.usecase.Create repo.CreateSuggestedTask %s: %v", rp.ID, err)
			continue
		}
		out.SuggestedTasks = append(out.SuggestedTasks, st)
	}
	return out, nil
}

// RegenerateForEntry discards every ripple of the entry, whatever its status,
// and creates the new drafts.
func (uc *implUseCase) RegenerateForEntry(ctx context.Context, sc model.Scope, input ripple.CreateInput) (ripple.RegenerateOutput, error) {
	if input.EntryID == "" {
		return ripple.RegenerateOutput{}, ripple.ErrEntryRequired
	}

	deleted, err := uc.repo.DeleteRipplesByEntry(ctx, repo.DeleteByEntryOptions{UserID: sc.UserID, EntryID: input.EntryID})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.RegenerateForEntry repo.DeleteRipplesByEntry: %v", err)
		return ripple.RegenerateOutput{}, err
	}

	created, err := uc.Create(ctx, sc, input)
	if err != nil {
		return ripple.RegenerateOutput{Deleted: deleted}, err
	}
	return ripple.RegenerateOutput{Deleted: deleted, CreateOutput: created}, nil
}

// DeleteForEntry removes the entry's ripples and suggested tasks. Materialized
// tasks, appointments and events are left alone.
func (uc *implUseCase) DeleteForEntry(ctx context.Context, sc model.Scope, entryID string) (ripple.RegenerateOutput, error) {
	return uc.RegenerateForEntry(ctx, sc, ripple.CreateInput{EntryID: entryID})
}
