package http

import (
	"journal-ripples/internal/ripple"
	"journal-ripples/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ripple.UseCase
}

// New creates a new HTTP handler for the ripple review surface.
func New(l log.Logger, uc ripple.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
