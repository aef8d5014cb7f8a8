package model

import "time"

// Task is a materialized to-do item.
type Task struct {
	ID             string
	UserID         string
	Title          string
	Details        string
	DueDate        *time.Time
	Recurrence     string // Wire-format rule, empty for one-off tasks
	ClusterID      string
	SourceRippleID string
	CreatedAt      time.Time
}
