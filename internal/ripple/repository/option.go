package repository

import (
	"time"

	"journal-ripples/internal/model"
)

// CreateRippleOptions holds parameters for inserting a pending Ripple.
type CreateRippleOptions struct {
	UserID          string
	EntryID         string
	EntryDate       time.Time
	Text            string
	OriginalContext string
	Type            model.RippleType
	Confidence      float64
	DueDate         *time.Time
	DueTime         string
	Recurrence      string
	ClusterID       string
}

// GetOneOptions selects one row of an owner by id.
type GetOneOptions struct {
	ID     string
	UserID string
}

// ListRipplesOptions filters ripples of one owner. All non-empty fields are
// applied as AND conditions.
type ListRipplesOptions struct {
	UserID    string
	EntryID   string
	EntryDate time.Time
	ClusterID string
	Status    model.RippleStatus
}

// ClaimRippleOptions moves a pending ripple to Status. A non-empty ClusterID
// is assigned in the same write.
type ClaimRippleOptions struct {
	ID        string
	UserID    string
	Status    model.RippleStatus
	ClusterID string
}

// ReleaseRippleOptions returns an approved, unlinked ripple to pending and
// restores its cluster.
type ReleaseRippleOptions struct {
	ID        string
	UserID    string
	ClusterID string
}

// LinkRippleOptions records the materialized entity and effective due date.
type LinkRippleOptions struct {
	ID            string
	UserID        string
	TaskID        string
	AppointmentID string
	EventID       string
	DueDate       *time.Time
}

// DeleteByEntryOptions selects every ripple derived from one entry.
type DeleteByEntryOptions struct {
	UserID  string
	EntryID string
}

// CreateSuggestedTaskOptions holds parameters for inserting a pending draft.
type CreateSuggestedTaskOptions struct {
	UserID      string
	RippleID    string
	EntryID     string
	Title       string
	Priority    model.Priority
	DueDate     *time.Time
	RepeatLabel string
	ClusterID   string
}

// ListSuggestedTasksOptions filters drafts of one owner.
type ListSuggestedTasksOptions struct {
	UserID  string
	EntryID string
	Status  model.SuggestedTaskStatus
}

// ClaimSuggestedTaskOptions moves a pending draft to Status.
type ClaimSuggestedTaskOptions struct {
	ID     string
	UserID string
	Status model.SuggestedTaskStatus
}

// LinkSuggestedTaskOptions records the task an accepted draft became.
type LinkSuggestedTaskOptions struct {
	ID     string
	UserID string
	TaskID string
}
