package gcalendar

import "time"

// DayFormat is the layout Google uses for all-day start and end dates.
const DayFormat = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
// When AllDay is set, StartTime only contributes its calendar day and
// EndTime is ignored.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Recurrence  []string // RRULE lines, e.g. "RRULE:FREQ=WEEKLY;BYDAY=MO"
	Timezone    string   // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Recurrence  []string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string
	MaxResults int64
}
