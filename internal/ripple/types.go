package ripple

import (
	"time"

	"journal-ripples/internal/model"
)

// Draft is a sieved, temporally enriched candidate ready to be stored.
type Draft struct {
	Text            string
	OriginalContext string
	Type            model.RippleType
	Confidence      float64
	DueDate         *time.Time
	DueTime         string
	Recurrence      string // Wire-format rule
	ClusterID       string
	Priority        model.Priority // Suggested task priority, medium when empty
}

// --- UseCase Inputs ---

type CreateInput struct {
	EntryID   string
	EntryDate time.Time
	Drafts    []Draft
}

// ListInput filters ripples. Zero-valued fields are not applied.
type ListInput struct {
	Date      time.Time
	EntryID   string
	ClusterID string
	Status    model.RippleStatus
}

// ApproveInput optionally overrides the cluster and due date of the ripple.
type ApproveInput struct {
	ID        string
	ClusterID string
	DueDate   *time.Time
}

type ListSuggestedTasksInput struct {
	Status  model.SuggestedTaskStatus
	EntryID string
}

// --- UseCase Outputs ---

// CreateOutput lists what was stored. Dropped counts drafts that failed to insert.
type CreateOutput struct {
	Ripples        []model.Ripple
	SuggestedTasks []model.SuggestedTask
	Dropped        int
}

type RegenerateOutput struct {
	Deleted int
	CreateOutput
}

type ListOutput struct {
	Ripples []model.Ripple
}

// ApproveOutput carries the approved ripple and the one entity it became.
type ApproveOutput struct {
	Ripple      model.Ripple
	Task        *model.Task
	Appointment *model.Appointment
	Event       *model.ImportantEvent
}

type ListSuggestedTasksOutput struct {
	SuggestedTasks []model.SuggestedTask
}

type AcceptSuggestedTaskOutput struct {
	SuggestedTask model.SuggestedTask
	Task          model.Task
}
