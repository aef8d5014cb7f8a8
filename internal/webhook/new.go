package webhook

import (
	"journal-ripples/internal/automation"
	pkgLog "journal-ripples/pkg/log"
)

// Handler receives entry lifecycle events from the journal and runs them
// through the automation orchestrator before acknowledging.
type Handler struct {
	entries  automation.UseCase
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewHandler(entries automation.UseCase, security SecurityConfig, l pkgLog.Logger) *Handler {
	return &Handler{
		entries:  entries,
		security: NewSecurityValidator(security),
		l:        l,
	}
}
