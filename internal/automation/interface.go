package automation

import (
	"context"

	"journal-ripples/internal/model"
)

// UseCase reacts to entry lifecycle events from the journal.
type UseCase interface {
	// OnEntryCreated upserts explicitly dated appointments and events, then
	// stores the ripples extracted from the entry.
	OnEntryCreated(ctx context.Context, sc model.Scope, entry model.Entry) (AnalyzeOutput, error)

	// OnEntryUpdated re-analyses the entry only when its text or day changed.
	OnEntryUpdated(ctx context.Context, sc model.Scope, input UpdateInput) (AnalyzeOutput, error)

	// OnEntryDeleted removes derived ripples and suggested tasks. Materialized
	// tasks, appointments and events are kept.
	OnEntryDeleted(ctx context.Context, sc model.Scope, entryID string) (AnalyzeOutput, error)
}
