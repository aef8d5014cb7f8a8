package webhook

import "time"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string        // Shared secret for signature verification
	AllowedIPs      []string      // IP whitelist (optional)
	RateLimitPerMin int           // Max requests per minute per source
	RedeliveryTTL   time.Duration // How long a delivery id is remembered
}

// Entry event names sent by the journal.
const (
	EventEntryCreated = "entry.created"
	EventEntryUpdated = "entry.updated"
	EventEntryDeleted = "entry.deleted"
)

// Headers read by the handler.
const (
	SignatureHeader  = "X-Journal-Signature"
	DeliveryIDHeader = "X-Delivery-ID"
)

// entryPayload is the body of every entry event.
type entryPayload struct {
	Event    string     `json:"event"`
	UserID   string     `json:"user_id"`
	EntryID  string     `json:"entry_id"` // deleted events only carry the id
	Entry    *entryData `json:"entry"`
	Previous *entryData `json:"previous"`
}

type entryData struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Date      string   `json:"date"` // YYYY-MM-DD or RFC3339
	Body      string   `json:"body"`
	Format    string   `json:"format"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	ClusterID string   `json:"cluster_id"`
}
