package middleware

import (
	"journal-ripples/pkg/log"
)

// UserIDHeader carries the owner id set by the upstream gateway.
const UserIDHeader = "X-User-ID"

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
