package usecase

import (
	"context"

	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	"journal-ripples/internal/ripple"
	repo "journal-ripples/internal/ripple/repository"
)

// ListSuggestedTasks returns the owner's drafts, optionally by status.
func (uc *implUseCase) ListSuggestedTasks(ctx context.Context, sc model.Scope, input ripple.ListSuggestedTasksInput) (ripple.ListSuggestedTasksOutput, error) {
	tasks, err := uc.repo.ListSuggestedTasks(ctx, repo.ListSuggestedTasksOptions{
		UserID:  sc.UserID,
		EntryID: input.EntryID,
		Status:  input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.ListSuggestedTasks repo.ListSuggestedTasks: %v", err)
		return ripple.ListSuggestedTasksOutput{}, err
	}
	return ripple.ListSuggestedTasksOutput{SuggestedTasks: tasks}, nil
}

// AcceptSuggestedTask claims a pending draft and creates a task from its
// fields. The paired ripple keeps its own status.
func (uc *implUseCase) AcceptSuggestedTask(ctx context.Context, sc model.Scope, id string) (ripple.AcceptSuggestedTaskOutput, error) {
	st, err := uc.pendingSuggestedTask(ctx, sc, id)
	if err != nil {
		return ripple.AcceptSuggestedTaskOutput{}, err
	}

	// The draft only keeps a label; the rule and context live on the ripple.
	source, err := uc.repo.GetOneRipple(ctx, repo.GetOneOptions{ID: st.RippleID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.AcceptSuggestedTask repo.GetOneRipple: %v", err)
		return ripple.AcceptSuggestedTaskOutput{}, err
	}

	claimed, err := uc.repo.ClaimSuggestedTask(ctx, repo.ClaimSuggestedTaskOptions{ID: st.ID, UserID: sc.UserID, Status: model.SuggestedTaskAccepted})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.AcceptSuggestedTask repo.ClaimSuggestedTask: %v", err)
		return ripple.AcceptSuggestedTaskOutput{}, err
	}
	if !claimed {
		return ripple.AcceptSuggestedTaskOutput{}, ripple.ErrNotPending
	}

	t, err := uc.planner.CreateTask(ctx, sc, planner.CreateTaskInput{
		Title:          st.Title,
		Details:        source.OriginalContext,
		DueDate:        st.DueDate,
		Recurrence:     source.Recurrence,
		ClusterID:      st.ClusterID,
		SourceRippleID: st.RippleID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.AcceptSuggestedTask planner.CreateTask: %v", err)
		if rerr := uc.repo.ReleaseSuggestedTask(ctx, repo.GetOneOptions{ID: st.ID, UserID: sc.UserID}); rerr != nil {
			uc.l.Errorf(ctx, "ripple.usecase.AcceptSuggestedTask repo.ReleaseSuggestedTask %s: %v", st.ID, rerr)
		}
		return ripple.AcceptSuggestedTaskOutput{}, err
	}

	if err := uc.repo.LinkSuggestedTask(ctx, repo.LinkSuggestedTaskOptions{ID: st.ID, UserID: sc.UserID, TaskID: t.ID}); err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.AcceptSuggestedTask repo.LinkSuggestedTask: %v", err)
		return ripple.AcceptSuggestedTaskOutput{}, err
	}

	st.Status, st.TaskID = model.SuggestedTaskAccepted, t.ID
	return ripple.AcceptSuggestedTaskOutput{SuggestedTask: st, Task: t}, nil
}

// RejectSuggestedTask claims a pending draft as rejected.
func (uc *implUseCase) RejectSuggestedTask(ctx context.Context, sc model.Scope, id string) (model.SuggestedTask, error) {
	st, err := uc.pendingSuggestedTask(ctx, sc, id)
	if err != nil {
		return model.SuggestedTask{}, err
	}

	claimed, err := uc.repo.ClaimSuggestedTask(ctx, repo.ClaimSuggestedTaskOptions{ID: st.ID, UserID: sc.UserID, Status: model.SuggestedTaskRejected})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase.RejectSuggestedTask repo.ClaimSuggestedTask: %v", err)
		return model.SuggestedTask{}, err
	}
	if !claimed {
		return model.SuggestedTask{}, ripple.ErrNotPending
	}

	st.Status = model.SuggestedTaskRejected
	return st, nil
}

func (uc *implUseCase) pendingSuggestedTask(ctx context.Context, sc model.Scope, id string) (model.SuggestedTask, error) {
	st, err := uc.repo.GetOneSuggestedTask(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "ripple.usecase repo.GetOneSuggestedTask: %v", err)
		return model.SuggestedTask{}, err
	}
	if st.ID == "" {
		return model.SuggestedTask{}, ripple.ErrSuggestedTaskNotFound
	}
	if st.Status != model.SuggestedTaskPending {
		return model.SuggestedTask{}, ripple.ErrNotPending
	}
	return st, nil
}
