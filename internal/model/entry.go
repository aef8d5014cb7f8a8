package model

import "time"

// EntryFormat is the representation of an entry body.
type EntryFormat string

const (
	FormatText     EntryFormat = "text"
	FormatHTML     EntryFormat = "html"
	FormatMarkdown EntryFormat = "markdown"
)

// Entry is the journal entry payload received from the entry collaborator.
type Entry struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Date      time.Time   `json:"date"`       // Journal day the entry belongs to
	Body      string      `json:"body"`       // Raw body as stored by the collaborator
	Format    EntryFormat `json:"format"`     // Defaults to text
	Mood      string      `json:"mood"`       // Opaque, never analysed
	Tags      []string    `json:"tags"`       // Opaque, never analysed
	ClusterID string      `json:"cluster_id"` // Optional cluster assigned to the entry
}
