package webhook

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"journal-ripples/internal/automation"
	"journal-ripples/internal/model"
	"journal-ripples/pkg/log"
)

const testSecret = "s3cret"

type mockAutomation struct {
	created []model.Entry
	updated []automation.UpdateInput
	deleted []string
	err     error
}

func (m *mockAutomation) OnEntryCreated(ctx context.Context, sc model.Scope, entry model.Entry) (automation.AnalyzeOutput, error) {
	m.created = append(m.created, entry)
	return automation.AnalyzeOutput{EntryID: entry.ID, Ripples: []string{"r1"}}, m.err
}

func (m *mockAutomation) OnEntryUpdated(ctx context.Context, sc model.Scope, input automation.UpdateInput) (automation.AnalyzeOutput, error) {
	m.updated = append(m.updated, input)
	return automation.AnalyzeOutput{EntryID: input.Entry.ID}, m.err
}

func (m *mockAutomation) OnEntryDeleted(ctx context.Context, sc model.Scope, entryID string) (automation.AnalyzeOutput, error) {
	m.deleted = append(m.deleted, entryID)
	return automation.AnalyzeOutput{EntryID: entryID, Deleted: 2}, m.err
}

func newTestRouter(uc automation.UseCase, cfg SecurityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(uc, cfg, log.NewNop())
	r.POST("/webhook/entries", h.HandleEntryEvent)
	return r
}

func post(r *gin.Engine, body, deliveryID string, sign bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/entries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sign {
		req.Header.Set(SignatureHeader, "sha256="+hex.EncodeToString(Sign(testSecret, []byte(body))))
	}
	if deliveryID != "" {
		req.Header.Set(DeliveryIDHeader, deliveryID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createdBody = `{"event":"entry.created","user_id":"u1","entry":{"id":"e1","date":"2024-06-10","body":"<p>Remember to send the slides this Friday.</p>","format":"html","mood":"ok"}}`

func TestHandleEntryEvent_Dispatch(t *testing.T) {
	uc := &mockAutomation{}
	r := newTestRouter(uc, SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	if w := post(r, createdBody, "", true); w.Code != http.StatusOK {
		t.Fatalf("created: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(uc.created) != 1 {
		t.Fatalf("created events = %d", len(uc.created))
	}
	got := uc.created[0]
	if got.ID != "e1" || got.UserID != "u1" || got.Format != model.FormatHTML ||
		!got.Date.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected entry %+v", got)
	}

	updated := `{"event":"entry.updated","entry":{"id":"e1","user_id":"u1","date":"2024-06-10T21:30:00-04:00","body":"new"},"previous":{"id":"e1","date":"2024-06-10","body":"old"}}`
	if w := post(r, updated, "", true); w.Code != http.StatusOK {
		t.Fatalf("updated: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(uc.updated) != 1 {
		t.Fatalf("updated events = %d", len(uc.updated))
	}
	in := uc.updated[0]
	if in.Entry.Format != model.FormatText || in.Previous.Body != "old" || in.Entry.Date.Day() != 10 {
		t.Errorf("unexpected update input %+v", in)
	}

	if w := post(r, `{"event":"entry.deleted","user_id":"u1","entry_id":"e1"}`, "", true); w.Code != http.StatusOK {
		t.Fatalf("deleted: expected 200, got %d", w.Code)
	}
	if len(uc.deleted) != 1 || uc.deleted[0] != "e1" {
		t.Errorf("unexpected deletes %v", uc.deleted)
	}
}

func TestHandleEntryEvent_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
		sign bool
		cfg  SecurityConfig
		err  error
		want int
	}{
		{name: "unsigned", body: createdBody, want: http.StatusUnauthorized},
		{name: "unknown event", body: `{"event":"entry.archived","user_id":"u1","entry_id":"e1"}`, sign: true, want: http.StatusBadRequest},
		{name: "missing owner", body: `{"event":"entry.deleted","entry_id":"e1"}`, sign: true, want: http.StatusBadRequest},
		{name: "bad date", body: `{"event":"entry.created","user_id":"u1","entry":{"id":"e1","date":"June 10"}}`, sign: true, want: http.StatusBadRequest},
		{name: "bad format", body: `{"event":"entry.created","user_id":"u1","entry":{"id":"e1","date":"2024-06-10","format":"rtf"}}`, sign: true, want: http.StatusBadRequest},
		{name: "orchestrator validation", body: createdBody, sign: true, err: automation.ErrEntryIDRequired, want: http.StatusBadRequest},
		{name: "storage failure", body: createdBody, sign: true, err: errors.New("disk full"), want: http.StatusInternalServerError},
		{name: "ip not allowed", body: createdBody, sign: true, cfg: SecurityConfig{AllowedIPs: []string{"10.0.0.1"}}, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Secret = testSecret
			w := post(newTestRouter(&mockAutomation{err: tt.err}, cfg), tt.body, "", tt.sign)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleEntryEvent_OversizedBody(t *testing.T) {
	uc := &mockAutomation{}
	r := newTestRouter(uc, SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	body := `{"event":"entry.created","user_id":"u1","entry":{"id":"e1","date":"2024-06-10","body":"` +
		strings.Repeat("a", maxBodyBytes) + `"}}`
	w := post(r, body, "d-big", true)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
	if len(uc.created) != 0 {
		t.Errorf("oversized body reached the orchestrator")
	}

	if w := post(r, createdBody, "d-big", true); w.Code != http.StatusOK || len(uc.created) != 1 {
		t.Errorf("a rejected delivery id must stay retryable, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandleEntryEvent_Redelivery(t *testing.T) {
	uc := &mockAutomation{}
	r := newTestRouter(uc, SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	for i := 0; i < 2; i++ {
		if w := post(r, createdBody, "delivery-1", true); w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i, w.Code)
		}
	}
	if len(uc.created) != 1 {
		t.Errorf("redelivery processed again: %d calls", len(uc.created))
	}

	// A failed delivery is not remembered, so the retry runs.
	failing := &mockAutomation{err: errors.New("disk full")}
	r = newTestRouter(failing, SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})
	post(r, createdBody, "delivery-2", true)
	failing.err = nil
	if w := post(r, createdBody, "delivery-2", true); w.Code != http.StatusOK {
		t.Fatalf("retry: expected 200, got %d", w.Code)
	}
	if len(failing.created) != 2 {
		t.Errorf("retry after failure was not processed: %d calls", len(failing.created))
	}
}

func TestHandleEntryEvent_RateLimited(t *testing.T) {
	r := newTestRouter(&mockAutomation{}, SecurityConfig{Secret: testSecret, RateLimitPerMin: 10})

	if w := post(r, createdBody, "", true); w.Code != http.StatusOK {
		t.Fatalf("first: expected 200, got %d", w.Code)
	}
	if w := post(r, createdBody, "", true); w.Code != http.StatusTooManyRequests {
		t.Errorf("second: expected 429, got %d", w.Code)
	}
}
