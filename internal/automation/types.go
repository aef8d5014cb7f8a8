package automation

import (
	"journal-ripples/internal/model"
)

// UpdateInput carries the new entry and the version it replaces.
type UpdateInput struct {
	Entry    model.Entry
	Previous model.Entry
}

// AnalyzeOutput summarises what one entry event produced.
type AnalyzeOutput struct {
	EntryID        string
	Skipped        bool           // Update with unchanged text
	Failed         bool           // Analysis panicked and was isolated
	Candidates     int            // Extracted before the sieve
	Rejected       map[string]int // Sieve rejections by reason
	Ripples        []string       // IDs of stored ripples
	SuggestedTasks int
	Dropped        int // Drafts that failed to store
	Deleted        int // Ripples removed before regeneration
	Appointments   int // Appointments created by direct upsert
	Events         int // Important events created by direct upsert
}

// ClusterMatch is the cluster picked from keyword hints.
type ClusterMatch struct {
	ClusterID string
	Hits      int
}
