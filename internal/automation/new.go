package automation

import (
	"journal-ripples/internal/extraction"
	"journal-ripples/internal/planner"
	"journal-ripples/internal/ripple"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/lexicon"
	pkgLog "journal-ripples/pkg/log"
)

type candidateExtractor interface {
	Extract(text string) []extraction.Candidate
}

type candidateSieve interface {
	Filter(candidates []extraction.Candidate) ([]extraction.Candidate, map[string]int)
}

// Options toggles optional steps of the entry pipeline.
type Options struct {
	DirectUpserts bool // Upsert explicitly dated appointments and events
}

func New(
	ripples ripple.UseCase,
	planner planner.UseCase,
	lex *lexicon.Compiled,
	dates *datemath.Parser,
	opts Options,
	l pkgLog.Logger,
) UseCase {
	return &usecase{
		ripples:   ripples,
		planner:   planner,
		lex:       lex,
		dates:     dates,
		extractor: extraction.NewExtractor(lex),
		sieve:     extraction.NewSieve(lex),
		matcher:   NewClusterMatcher(lex),
		metrics:   NewMetrics(),
		opts:      opts,
		l:         l,
	}
}
