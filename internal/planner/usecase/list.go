package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	repo "journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/rrule"
)

const defaultTaskLimit = 100

// ListTasks returns the owner's materialized tasks, newest first.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input planner.ListTasksInput) (planner.ListTasksOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTaskLimit
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:    sc.UserID,
		ClusterID: input.ClusterID,
		Limit:     limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListTasks repo.ListTasks: %v", err)
		return planner.ListTasksOutput{}, err
	}
	return planner.ListTasksOutput{Tasks: tasks}, nil
}

// ListAppointments lists persisted one-offs in the range and, when asked,
// the virtual occurrences of every series. A virtual occurrence is dropped
// when a one-off with the same date, start time and title exists. Without
// series expansion a series appears only at its anchor date.
func (uc *implUseCase) ListAppointments(ctx context.Context, sc model.Scope, input planner.ListAppointmentsInput) (planner.ListAppointmentsOutput, error) {
	from, to, err := dayRange(input.From, input.To)
	if err != nil {
		return planner.ListAppointmentsOutput{}, err
	}

	oneOffs, err := uc.repo.ListAppointments(ctx, repo.ListAppointmentsOptions{UserID: sc.UserID, From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListAppointments repo.ListAppointments: %v", err)
		return planner.ListAppointmentsOutput{}, err
	}

	occurrences := make([]model.Occurrence, 0, len(oneOffs))
	taken := make(map[occurrenceKey]bool, len(oneOffs))
	for _, a := range oneOffs {
		occurrences = append(occurrences, model.Occurrence{
			AppointmentID: a.ID,
			Title:         a.Title,
			Date:          a.Date,
			StartTime:     a.StartTime,
		})
		taken[keyOf(a.Title, a.Date.Format(rrule.DateFormat), a.StartTime)] = true
	}

	series, err := uc.repo.ListAppointments(ctx, repo.ListAppointmentsOptions{UserID: sc.UserID, To: to, Series: true})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListAppointments repo.ListAppointments series: %v", err)
		return planner.ListAppointmentsOutput{}, err
	}
	for _, s := range series {
		if input.IncludeSeries {
			occurrences = append(occurrences, uc.expandSeries(ctx, s, from, to, taken)...)
			continue
		}
		// Unexpanded, a series is listed once as its stored anchor row.
		if s.Date.Before(from) || taken[keyOf(s.Title, s.Date.Format(rrule.DateFormat), s.StartTime)] {
			continue
		}
		occurrences = append(occurrences, model.Occurrence{
			AppointmentID: s.ID,
			Title:         s.Title,
			Date:          s.Date,
			StartTime:     s.StartTime,
		})
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.Title < b.Title
	})
	return planner.ListAppointmentsOutput{Occurrences: occurrences}, nil
}

// ListEvents returns the owner's important events in the range.
func (uc *implUseCase) ListEvents(ctx context.Context, sc model.Scope, input planner.ListEventsInput) (planner.ListEventsOutput, error) {
	from, to, err := dayRange(input.From, input.To)
	if err != nil {
		return planner.ListEventsOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{UserID: sc.UserID, From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListEvents repo.ListEvents: %v", err)
		return planner.ListEventsOutput{}, err
	}
	return planner.ListEventsOutput{Events: events}, nil
}

func (uc *implUseCase) expandSeries(ctx context.Context, s model.Appointment, from, to time.Time, taken map[occurrenceKey]bool) []model.Occurrence {
	rule, err := rrule.Parse(s.Recurrence)
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.ListAppointments series %s has unusable rule %q: %v", s.ID, s.Recurrence, err)
		return nil
	}

	var out []model.Occurrence
	for _, d := range rrule.Expand(rule, s.Date, from, to) {
		if taken[keyOf(s.Title, d.Format(rrule.DateFormat), s.StartTime)] {
			continue
		}
		out = append(out, model.Occurrence{
			AppointmentID: s.ID,
			Title:         s.Title,
			Date:          d,
			StartTime:     s.StartTime,
			Virtual:       true,
		})
	}
	return out
}

type occurrenceKey struct {
	title, date, start string
}

func keyOf(title, date, start string) occurrenceKey {
	return occurrenceKey{title: strings.ToLower(strings.TrimSpace(title)), date: date, start: start}
}
