package extraction

import "journal-ripples/internal/model"

// Candidate is an in-memory extraction result, never persisted directly.
type Candidate struct {
	Text            string           // Captured actionable fragment
	OriginalContext string           // Verbatim matched span
	Type            model.RippleType // Coarse classification
	Confidence      float64          // Score in [0,1]
	Counterpart     string           // Appointment counterpart ("Sam"), if any
	When            string           // Temporal phrase captured by the pattern, if any
	Cadence         string           // Recurring cadence word ("friday"), if any
	Pattern         string           // Name of the pattern that matched
}

// Pattern names recorded on candidates.
const (
	PatternTask        = "task"
	PatternHedgedTask  = "hedged-task"
	PatternRecurring   = "recurring"
	PatternAppointment = "appointment"
	PatternEvent       = "event"
)

// Confidence scores per pattern.
const (
	ConfidenceNeedTo      = 0.8
	ConfidenceTask        = 0.6
	ConfidenceHedged      = 0.45
	ConfidenceRecurring   = 0.7
	ConfidenceAppointment = 0.75
	ConfidenceEvent       = 0.7
)

// Sieve verdict reasons.
const (
	ReasonJunk   = "junk"
	ReasonNoVerb = "no-verb"
	ReasonOK     = "ok"
)

// Verdict explains a sieve decision. Rule names the check that decided it.
type Verdict struct {
	Keep   bool   `json:"keep"`
	Reason string `json:"reason"`
	Rule   string `json:"rule"`
	Verb   string `json:"verb,omitempty"`
}
