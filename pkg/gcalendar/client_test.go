package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"journal-ripples/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

// rewriteTransport sends every API request to the test server.
type rewriteTransport struct {
	base http.RoundTripper
	host string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.base.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{base: hc.Transport, host: strings.TrimPrefix(ts.URL, "http://")}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewClientFromHTTP() unexpected error: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		creds   string
		token   string // written to token.json when non-empty
		wantErr bool
	}{
		{name: "Unknown format", creds: `{"broken":true}`, wantErr: true},
		{name: "Installed app without token", creds: installedCreds, wantErr: true},
		{name: "Installed app with broken token", creds: installedCreds, token: `{"broken": true`, wantErr: true},
		{name: "Installed app with token", creds: installedCreds, token: `{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Remove(gcalendar.TokenFile)
			if tt.token != "" {
				if err := os.WriteFile(gcalendar.TokenFile, []byte(tt.token), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(tt.creds))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClientFromCredentialsJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewClientFromCredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte(`{"broken":true}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
		t.Error("expected failure loading broken file")
	}
	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected reading file error")
	}
}

type eventBody struct {
	Summary string `json:"summary"`
	Start   struct {
		Date     string `json:"date"`
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"start"`
	End struct {
		Date     string `json:"date"`
		DateTime string `json:"dateTime"`
	} `json:"end"`
	Recurrence []string `json:"recurrence"`
}

func TestCreateEvent(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name  string
		req   gcalendar.CreateEventRequest
		check func(t *testing.T, b eventBody)
	}{
		{
			name: "All-day series",
			req: gcalendar.CreateEventRequest{
				Summary:    "Book club",
				StartTime:  time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
				AllDay:     true,
				Recurrence: []string{"RRULE:FREQ=WEEKLY;BYDAY=FR"},
			},
			check: func(t *testing.T, b eventBody) {
				if b.Start.Date != "2024-06-14" || b.End.Date != "2024-06-15" {
					t.Errorf("all-day span = %s..%s", b.Start.Date, b.End.Date)
				}
				if len(b.Recurrence) != 1 || b.Recurrence[0] != "RRULE:FREQ=WEEKLY;BYDAY=FR" {
					t.Errorf("recurrence = %v", b.Recurrence)
				}
			},
		},
		{
			name: "Timed event",
			req: gcalendar.CreateEventRequest{
				Summary:   "Dentist appointment",
				StartTime: time.Date(2024, 6, 20, 15, 0, 0, 0, berlin),
				EndTime:   time.Date(2024, 6, 20, 16, 0, 0, 0, berlin),
				Timezone:  "Europe/Berlin",
			},
			check: func(t *testing.T, b eventBody) {
				if b.Start.DateTime != "2024-06-20T15:00:00+02:00" || b.End.DateTime != "2024-06-20T16:00:00+02:00" {
					t.Errorf("timed span = %s..%s", b.Start.DateTime, b.End.DateTime)
				}
				if b.Start.TimeZone != "Europe/Berlin" || b.Start.Date != "" {
					t.Errorf("start = %+v", b.Start)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got eventBody
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/primary/events" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				json.NewDecoder(r.Body).Decode(&got)
				w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			})

			event, err := client.CreateEvent(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("CreateEvent() unexpected error: %v", err)
			}
			if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
				t.Errorf("event = %+v", event)
			}
			if got.Summary != tt.req.Summary {
				t.Errorf("summary = %q", got.Summary)
			}
			tt.check(t, got)
		})
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"}); err == nil {
		t.Fatal("expected create event error")
	}
}

func TestListEvents(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/work/events":
			query = r.URL.Query().Get("q")
			w.Write([]byte(`{"items": [
				{"id": "a", "summary": "Standup", "start": {"dateTime": "2024-05-01T09:00:00Z"}, "end": {"dateTime": "2024-05-01T09:15:00Z"}},
				{"id": "b", "summary": "Mia's birthday", "start": {"date": "2024-05-01"}, "end": {"date": "2024-05-02"}, "recurrence": ["RRULE:FREQ=YEARLY"]}
			]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "work",
		TimeMin:    from,
		TimeMax:    from.AddDate(0, 0, 1),
		Query:      "Standup",
	})
	if err != nil {
		t.Fatalf("ListEvents() unexpected error: %v", err)
	}
	if query != "Standup" {
		t.Errorf("q = %q, want Standup", query)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].AllDay || !events[0].StartTime.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("timed event = %+v", events[0])
	}
	if !events[1].AllDay || events[1].StartTime.Format(gcalendar.DayFormat) != "2024-05-01" || len(events[1].Recurrence) != 1 {
		t.Errorf("all-day event = %+v", events[1])
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{TimeMin: from, TimeMax: from}); err == nil {
		t.Fatal("expected api error for the primary calendar")
	}
}
