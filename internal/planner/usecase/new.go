package usecase

import (
	"journal-ripples/internal/planner"
	"journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/log"
)

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	publisher planner.Publisher
}

// New creates a new planner UseCase. publisher may be nil.
func New(repo repository.Repository, l log.Logger, publisher planner.Publisher) *implUseCase {
	return &implUseCase{
		repo:      repo,
		l:         l,
		publisher: publisher,
	}
}
