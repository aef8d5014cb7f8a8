package repository

import (
	"context"

	"journal-ripples/internal/model"
)

// Repository is the composed interface for the ripple data store.
type Repository interface {
	RippleRepository
	SuggestedTaskRepository
}

// RippleRepository defines data access for ripples. Claim methods are
// compare-and-set transitions out of pending; they report false when the
// row was not pending.
type RippleRepository interface {
	CreateRipple(ctx context.Context, opt CreateRippleOptions) (model.Ripple, error)
	GetOneRipple(ctx context.Context, opt GetOneOptions) (model.Ripple, error)
	ListRipples(ctx context.Context, opt ListRipplesOptions) ([]model.Ripple, error)
	ClaimRipple(ctx context.Context, opt ClaimRippleOptions) (bool, error)
	ReleaseRipple(ctx context.Context, opt ReleaseRippleOptions) error
	LinkRipple(ctx context.Context, opt LinkRippleOptions) error
	DeleteRipplesByEntry(ctx context.Context, opt DeleteByEntryOptions) (int, error)
}

// SuggestedTaskRepository defines data access for suggested task drafts.
type SuggestedTaskRepository interface {
	CreateSuggestedTask(ctx context.Context, opt CreateSuggestedTaskOptions) (model.SuggestedTask, error)
	GetOneSuggestedTask(ctx context.Context, opt GetOneOptions) (model.SuggestedTask, error)
	ListSuggestedTasks(ctx context.Context, opt ListSuggestedTasksOptions) ([]model.SuggestedTask, error)
	ClaimSuggestedTask(ctx context.Context, opt ClaimSuggestedTaskOptions) (bool, error)
	ReleaseSuggestedTask(ctx context.Context, opt GetOneOptions) error
	LinkSuggestedTask(ctx context.Context, opt LinkSuggestedTaskOptions) error
}
