package model

import "time"

// RippleType classifies an extracted candidate.
type RippleType string

const (
	RippleTypeTask           RippleType = "task"
	RippleTypeRecurringTask  RippleType = "recurringTask"
	RippleTypeAppointment    RippleType = "appointment"
	RippleTypeImportantEvent RippleType = "importantEvent"
)

// IsValid reports whether t is a known ripple type.
func (t RippleType) IsValid() bool {
	switch t {
	case RippleTypeTask, RippleTypeRecurringTask, RippleTypeAppointment, RippleTypeImportantEvent:
		return true
	}
	return false
}

// IsTaskLike reports whether ripples of this type get a suggested task draft.
func (t RippleType) IsTaskLike() bool {
	return t == RippleTypeTask || t == RippleTypeRecurringTask
}

// RippleStatus is the review state of a ripple. Approved and dismissed are terminal.
type RippleStatus string

const (
	RippleStatusPending   RippleStatus = "pending"
	RippleStatusApproved  RippleStatus = "approved"
	RippleStatusDismissed RippleStatus = "dismissed"
)

// SuggestedTaskStatus is the review state of a suggested task draft.
type SuggestedTaskStatus string

const (
	SuggestedTaskPending  SuggestedTaskStatus = "pending"
	SuggestedTaskAccepted SuggestedTaskStatus = "accepted"
	SuggestedTaskRejected SuggestedTaskStatus = "rejected"
)

// ConfidenceBand is the coarse display label of a confidence score.
type ConfidenceBand string

const (
	BandHigh   ConfidenceBand = "high"
	BandMedium ConfidenceBand = "medium"
	BandLow    ConfidenceBand = "low"
)

// BandOf maps a score in [0,1] to its band.
func BandOf(score float64) ConfidenceBand {
	switch {
	case score >= 0.75:
		return BandHigh
	case score >= 0.5:
		return BandMedium
	}
	return BandLow
}

// Priority of a suggested task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Ripple is a reviewable suggestion derived from one entry.
type Ripple struct {
	ID              string
	UserID          string
	EntryID         string
	EntryDate       time.Time
	Text            string // Extracted actionable fragment
	OriginalContext string // Verbatim matched span
	Type            RippleType
	Confidence      float64
	Band            ConfidenceBand
	Status          RippleStatus
	DueDate         *time.Time
	DueTime         string // "15:04" or empty
	Recurrence      string // Wire-format rule, empty when not recurring
	ClusterID       string
	TaskID          string // Set once approved into a task
	AppointmentID   string // Set once approved into an appointment
	EventID         string // Set once approved into an important event
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SuggestedTask is the task draft paired with a task-like ripple. Its status
// is independent of the ripple's.
type SuggestedTask struct {
	ID          string
	UserID      string
	RippleID    string
	EntryID     string
	Title       string
	Priority    Priority
	DueDate     *time.Time
	RepeatLabel string // Human cadence, e.g. "every other week"
	ClusterID   string
	Status      SuggestedTaskStatus
	TaskID      string // Set once accepted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
