package automation

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"journal-ripples/internal/extraction"
	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	"journal-ripples/internal/ripple"
)

// analysis is the storage-free result of reading one entry.
type analysis struct {
	candidates   int
	rejected     map[string]int
	drafts       []ripple.Draft
	appointments []planner.CreateAppointmentInput
	events       []planner.CreateEventInput
}

// analyze runs extraction, the sieve and temporal resolution. A panic in any
// of them is recovered and returned as an error.
func (uc *usecase) analyze(ctx context.Context, entry model.Entry, text string, day time.Time) (a analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "automation.analyze entry %s panicked: %v\n%s", entry.ID, r, debug.Stack())
			a, err = analysis{}, fmt.Errorf("analysis of entry %s panicked: %v", entry.ID, r)
		}
	}()

	ref := uc.anchor(day)
	a.appointments, a.events = uc.mentions(text, ref, day, entry.ClusterID)

	found := uc.extractor.Extract(text)
	kept, rejected := uc.sieve.Filter(found)
	a.candidates = len(found)
	a.rejected = rejected

	a.drafts = make([]ripple.Draft, 0, len(kept))
	for _, c := range kept {
		a.drafts = append(a.drafts, uc.draft(c, text, ref, entry.ClusterID))
	}
	return a, nil
}

// draft resolves the cadence, due date and cluster of a kept candidate. A
// recurrence decides the due date as its next occurrence; otherwise the
// first explicit date in the matched span does.
func (uc *usecase) draft(c extraction.Candidate, entryText string, ref time.Time, entryCluster string) ripple.Draft {
	d := ripple.Draft{
		Text:            c.Text,
		OriginalContext: c.OriginalContext,
		Type:            c.Type,
		Confidence:      c.Confidence,
		Priority:        uc.priority(c),
	}

	if rec, ok := uc.dates.ParseRecurrence(c.OriginalContext, ref); ok {
		d.Recurrence = rec.Rule.String()
		if !rec.Next.IsZero() {
			next := rec.Next
			d.DueDate = &next
		}
		if d.Type == model.RippleTypeTask {
			d.Type = model.RippleTypeRecurringTask
		}
	}

	if mentions := uc.dates.ExtractDates(c.OriginalContext, ref); len(mentions) > 0 {
		if d.DueDate == nil {
			date := mentions[0].Date
			d.DueDate = &date
		}
		d.DueTime = mentions[0].TimeStart
	}

	d.ClusterID = entryCluster
	if d.ClusterID == "" {
		if m, ok := uc.matcher.Match(c.OriginalContext, entryText); ok {
			d.ClusterID = m.ClusterID
		}
	}
	return d
}

func (uc *usecase) priority(c extraction.Candidate) model.Priority {
	switch {
	case uc.lex.IsUrgent(c.OriginalContext):
		return model.PriorityHigh
	case model.BandOf(c.Confidence) == model.BandLow:
		return model.PriorityLow
	}
	return model.PriorityMedium
}

// mentions picks the explicit dates whose sentence names an appointment or
// event keyword. Dates before the entry day are history, not plans.
func (uc *usecase) mentions(text string, ref, day time.Time, cluster string) ([]planner.CreateAppointmentInput, []planner.CreateEventInput) {
	var (
		appts  []planner.CreateAppointmentInput
		events []planner.CreateEventInput
	)
	for _, m := range uc.dates.ExtractDates(text, ref) {
		if m.Date.Before(day) {
			continue
		}
		subject := m.Title + " " + m.Phrase
		switch {
		case uc.lex.HasAppointmentKeyword(subject):
			appts = append(appts, planner.CreateAppointmentInput{
				Title:     m.Title,
				Date:      m.Date,
				StartTime: m.TimeStart,
				ClusterID: cluster,
			})
		case uc.lex.HasEventKeyword(subject):
			events = append(events, planner.CreateEventInput{
				Title:     m.Title,
				Date:      m.Date,
				ClusterID: cluster,
			})
		}
	}
	return appts, events
}
