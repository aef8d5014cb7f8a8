package ripple

import (
	"context"

	"journal-ripples/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generation
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	RegenerateForEntry(ctx context.Context, sc model.Scope, input CreateInput) (RegenerateOutput, error)
	DeleteForEntry(ctx context.Context, sc model.Scope, entryID string) (RegenerateOutput, error)

	// Ripple review
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Approve(ctx context.Context, sc model.Scope, input ApproveInput) (ApproveOutput, error)
	Dismiss(ctx context.Context, sc model.Scope, id string) (model.Ripple, error)

	// Suggested task review
	ListSuggestedTasks(ctx context.Context, sc model.Scope, input ListSuggestedTasksInput) (ListSuggestedTasksOutput, error)
	AcceptSuggestedTask(ctx context.Context, sc model.Scope, id string) (AcceptSuggestedTaskOutput, error)
	RejectSuggestedTask(ctx context.Context, sc model.Scope, id string) (model.SuggestedTask, error)
}
