package publisher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/pkg/gcalendar"
	"journal-ripples/pkg/log"
	"journal-ripples/pkg/rrule"
)

const defaultDuration = time.Hour

// CalendarClient is the subset of the Google Calendar client the publisher uses.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Calendar publishes appointments as Google Calendar events. Appointments
// without a start time become all-day events and series carry their rule.
type Calendar struct {
	client     CalendarClient
	calendarID string
	loc        *time.Location
	duration   time.Duration
	l          log.Logger
}

// NewCalendar creates a publisher writing to calendarID. Start times are
// interpreted in loc.
func NewCalendar(client CalendarClient, calendarID string, loc *time.Location, l log.Logger) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{
		client:     client,
		calendarID: calendarID,
		loc:        loc,
		duration:   defaultDuration,
		l:          l,
	}
}

// PublishAppointment creates the calendar event unless one with the same
// summary already starts that day.
func (p *Calendar) PublishAppointment(ctx context.Context, appt model.Appointment) error {
	req, err := p.request(appt)
	if err != nil {
		return err
	}

	dayStart := time.Date(appt.Date.Year(), appt.Date.Month(), appt.Date.Day(), 0, 0, 0, 0, p.loc)
	existing, err := p.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: p.calendarID,
		TimeMin:    dayStart,
		TimeMax:    dayStart.AddDate(0, 0, 1),
		Query:      appt.Title,
	})
	if err != nil {
		return fmt.Errorf("check existing events: %w", err)
	}
	for _, ev := range existing {
		if strings.EqualFold(ev.Summary, appt.Title) {
			p.l.Debugf(ctx, "planner.publisher.PublishAppointment: %q already on calendar as %s", appt.Title, ev.ID)
			return nil
		}
	}

	created, err := p.client.CreateEvent(ctx, req)
	if err != nil {
		return err
	}
	p.l.Infof(ctx, "planner.publisher.PublishAppointment: appointment %s published as %s", appt.ID, created.ID)
	return nil
}

func (p *Calendar) request(appt model.Appointment) (gcalendar.CreateEventRequest, error) {
	req := gcalendar.CreateEventRequest{
		CalendarID:  p.calendarID,
		Summary:     appt.Title,
		Description: "Added from your journal.",
		Timezone:    p.loc.String(),
	}

	if appt.StartTime == "" {
		req.AllDay = true
		req.StartTime = time.Date(appt.Date.Year(), appt.Date.Month(), appt.Date.Day(), 0, 0, 0, 0, p.loc)
	} else {
		clock, err := time.Parse("15:04", appt.StartTime)
		if err != nil {
			return gcalendar.CreateEventRequest{}, fmt.Errorf("start time %q: %w", appt.StartTime, err)
		}
		req.StartTime = time.Date(appt.Date.Year(), appt.Date.Month(), appt.Date.Day(), clock.Hour(), clock.Minute(), 0, 0, p.loc)
		req.EndTime = req.StartTime.Add(p.duration)
	}

	if appt.IsSeries() {
		rule, err := rrule.Parse(appt.Recurrence)
		if err != nil {
			return gcalendar.CreateEventRequest{}, fmt.Errorf("recurrence %q: %w", appt.Recurrence, err)
		}
		req.Recurrence = []string{rule.RFC5545()}
	}
	return req, nil
}
