package usecase

import (
	"journal-ripples/internal/planner"
	"journal-ripples/internal/ripple/repository"
	"journal-ripples/pkg/log"
)

// implUseCase is the private implementation of ripple.UseCase.
type implUseCase struct {
	repo    repository.Repository
	planner planner.UseCase
	l       log.Logger
}

// New creates a new ripple UseCase. Approvals materialize through p.
func New(repo repository.Repository, p planner.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		planner: p,
		l:       l,
	}
}
