package automation

import (
	"context"
	"fmt"
	"time"

	"journal-ripples/internal/entrytext"
	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	"journal-ripples/internal/ripple"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/lexicon"
	pkgLog "journal-ripples/pkg/log"
	"journal-ripples/pkg/rrule"
)

const (
	eventCreated = "created"
	eventUpdated = "updated"
	eventDeleted = "deleted"

	outcomeAnalysed = "analysed"
	outcomeSkipped  = "skipped"
	outcomeFailed   = "failed"
)

type usecase struct {
	ripples   ripple.UseCase
	planner   planner.UseCase
	lex       *lexicon.Compiled
	dates     *datemath.Parser
	extractor candidateExtractor
	sieve     candidateSieve
	matcher   *ClusterMatcher
	metrics   *Metrics
	opts      Options
	l         pkgLog.Logger
}

// OnEntryCreated analyses a new entry.
func (uc *usecase) OnEntryCreated(ctx context.Context, sc model.Scope, entry model.Entry) (AnalyzeOutput, error) {
	if err := validateEntry(entry); err != nil {
		return AnalyzeOutput{}, err
	}
	uc.l.Infof(ctx, "Analysing created entry %s for %s", entry.ID, entry.Date.Format(rrule.DateFormat))
	return uc.process(ctx, sc, entry, eventCreated)
}

// OnEntryUpdated regenerates the entry's ripples when the analysed input
// changed. Mood, tags and cluster edits alone never trigger re-extraction.
func (uc *usecase) OnEntryUpdated(ctx context.Context, sc model.Scope, input UpdateInput) (AnalyzeOutput, error) {
	entry := input.Entry
	if err := validateEntry(entry); err != nil {
		return AnalyzeOutput{}, err
	}

	if input.Previous.ID != "" && uc.sameInput(entry, input.Previous) {
		uc.l.Infof(ctx, "Skipping update of entry %s: text unchanged", entry.ID)
		uc.metrics.recordEntry(eventUpdated, outcomeSkipped)
		return AnalyzeOutput{EntryID: entry.ID, Skipped: true}, nil
	}

	uc.l.Infof(ctx, "Re-analysing updated entry %s", entry.ID)
	return uc.process(ctx, sc, entry, eventUpdated)
}

// OnEntryDeleted removes everything derived from the entry.
func (uc *usecase) OnEntryDeleted(ctx context.Context, sc model.Scope, entryID string) (AnalyzeOutput, error) {
	if entryID == "" {
		return AnalyzeOutput{}, ErrEntryIDRequired
	}

	res, err := uc.ripples.DeleteForEntry(ctx, sc, entryID)
	if err != nil {
		uc.l.Errorf(ctx, "automation.OnEntryDeleted ripples.DeleteForEntry %s: %v", entryID, err)
		return AnalyzeOutput{}, fmt.Errorf("failed to clear ripples of entry %s: %w", entryID, err)
	}

	uc.metrics.recordEntry(eventDeleted, outcomeAnalysed)
	uc.l.Infof(ctx, "Cleared %d ripple(s) of deleted entry %s", res.Deleted, entryID)
	return AnalyzeOutput{EntryID: entryID, Deleted: res.Deleted}, nil
}

// process runs analysis, the direct upserts and the ripple write. Created
// entries use Create, updated ones RegenerateForEntry.
func (uc *usecase) process(ctx context.Context, sc model.Scope, entry model.Entry, event string) (AnalyzeOutput, error) {
	day := rrule.Day(entry.Date)
	text := entrytext.Normalize(entry.Body, entry.Format)
	out := AnalyzeOutput{EntryID: entry.ID}

	a, err := uc.analyze(ctx, entry, text, day)
	if err != nil {
		out.Failed = true
		uc.metrics.recordEntry(event, outcomeFailed)
		if event == eventCreated {
			return out, nil
		}
		// The old ripples describe text that no longer exists.
		a = analysis{}
	}
	out.Candidates = a.candidates
	out.Rejected = a.rejected
	uc.metrics.recordAnalysis(a.candidates, a.rejected)

	if uc.opts.DirectUpserts {
		uc.upsertMentions(ctx, sc, a, &out)
	}

	input := ripple.CreateInput{EntryID: entry.ID, EntryDate: day, Drafts: a.drafts}
	var created ripple.CreateOutput
	if event == eventCreated {
		created, err = uc.ripples.Create(ctx, sc, input)
		if err != nil {
			uc.l.Errorf(ctx, "automation.process ripples.Create %s: %v", entry.ID, err)
			return out, fmt.Errorf("failed to store ripples of entry %s: %w", entry.ID, err)
		}
	} else {
		res, err := uc.ripples.RegenerateForEntry(ctx, sc, input)
		if err != nil {
			uc.l.Errorf(ctx, "automation.process ripples.RegenerateForEntry %s: %v", entry.ID, err)
			return out, fmt.Errorf("failed to regenerate ripples of entry %s: %w", entry.ID, err)
		}
		out.Deleted = res.Deleted
		created = res.CreateOutput
	}

	for _, rp := range created.Ripples {
		out.Ripples = append(out.Ripples, rp.ID)
		uc.metrics.RipplesCreated.WithLabelValues(string(rp.Type)).Inc()
	}
	out.SuggestedTasks = len(created.SuggestedTasks)
	out.Dropped = created.Dropped

	if !out.Failed {
		uc.metrics.recordEntry(event, outcomeAnalysed)
	}
	uc.l.Infof(ctx, "Entry %s: %d candidate(s), %d ripple(s), %d dropped",
		entry.ID, out.Candidates, len(out.Ripples), out.Dropped)
	return out, nil
}

// upsertMentions writes the explicitly dated appointments and events. A
// failure is logged and does not stop the ripple write.
func (uc *usecase) upsertMentions(ctx context.Context, sc model.Scope, a analysis, out *AnalyzeOutput) {
	for _, in := range a.appointments {
		res, err := uc.planner.UpsertAppointment(ctx, sc, in)
		if err != nil {
			uc.l.Warnf(ctx, "automation.upsertMentions planner.UpsertAppointment %q: %v", in.Title, err)
			continue
		}
		if res.Created {
			out.Appointments++
			uc.metrics.DirectUpserts.WithLabelValues("appointment").Inc()
		}
	}
	for _, in := range a.events {
		res, err := uc.planner.UpsertEvent(ctx, sc, in)
		if err != nil {
			uc.l.Warnf(ctx, "automation.upsertMentions planner.UpsertEvent %q: %v", in.Title, err)
			continue
		}
		if res.Created {
			out.Events++
			uc.metrics.DirectUpserts.WithLabelValues("importantEvent").Inc()
		}
	}
}

// sameInput reports whether both versions analyse identically.
func (uc *usecase) sameInput(entry, previous model.Entry) bool {
	if !rrule.Day(entry.Date).Equal(rrule.Day(previous.Date)) {
		return false
	}
	return entrytext.Normalize(entry.Body, entry.Format) == entrytext.Normalize(previous.Body, previous.Format)
}

func validateEntry(entry model.Entry) error {
	if entry.ID == "" {
		return ErrEntryIDRequired
	}
	if entry.Date.IsZero() {
		return ErrEntryDateRequired
	}
	return nil
}

// anchor places the journal day at midnight in the resolver's timezone so
// relative phrases resolve against that same calendar day.
func (uc *usecase) anchor(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, uc.dates.Location())
}
