package httpserver_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	_ "journal-ripples/docs"
	"journal-ripples/internal/httpserver"
	"journal-ripples/internal/middleware"
	"journal-ripples/internal/webhook"
	"journal-ripples/pkg/datemath"
	"journal-ripples/pkg/lexicon"
	"journal-ripples/pkg/log"
	"journal-ripples/pkg/sqlitedb"
)

const secret = "s3cret"

func newServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := sqlitedb.Open(sqlitedb.MemoryPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	srv, err := httpserver.New(context.Background(), log.NewNop(), httpserver.Config{
		Logger:          log.NewNop(),
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "test",
		DB:              db,
		Lexicon:         lexicon.MustDefault(),
		Dates:           dates,
		DirectUpserts:   true,
		WebhookEnabled:  true,
		WebhookSecurity: webhook.SecurityConfig{Secret: secret, RateLimitPerMin: 600},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t)

	for _, path := range []string{"/health", "/ready", "/live", "/metrics", "/swagger/doc.json"} {
		if w := do(t, h, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := httpserver.New(context.Background(), log.NewNop(), httpserver.Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Errorf("expected an error without a database")
	}
}

func TestEntryToTaskFlow(t *testing.T) {
	h := newServer(t)
	owner := map[string]string{middleware.UserIDHeader: "u1"}

	body := `{"event":"entry.created","user_id":"u1","entry":{"id":"e1","date":"2024-06-10","body":"Remember to send the slides this Friday."}}`
	w := do(t, h, http.MethodPost, "/webhook/entries", body, map[string]string{
		"Content-Type":          "application/json",
		webhook.SignatureHeader: "sha256=" + hex.EncodeToString(webhook.Sign(secret, []byte(body))),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("webhook: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/api/v1/ripples?date=2024-06-10", "", owner)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list struct {
		Data struct {
			Ripples []struct {
				ID      string `json:"id"`
				Text    string `json:"text"`
				DueDate string `json:"due_date"`
			} `json:"ripples"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Data.Ripples) != 1 || list.Data.Ripples[0].DueDate != "2024-06-14" {
		t.Fatalf("unexpected ripples %s", w.Body.String())
	}
	id := list.Data.Ripples[0].ID

	if w := do(t, h, http.MethodPost, "/api/v1/ripples/"+id+"/approve", "", owner); w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := do(t, h, http.MethodPost, "/api/v1/ripples/"+id+"/approve", "", owner); w.Code != http.StatusConflict {
		t.Errorf("second approve: expected 409, got %d", w.Code)
	}

	w = do(t, h, http.MethodGet, "/api/v1/tasks", "", owner)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "send the slides this Friday") {
		t.Errorf("tasks: %d %s", w.Code, w.Body.String())
	}

	// Other owners see nothing.
	w = do(t, h, http.MethodGet, "/api/v1/ripples?date=2024-06-10", "", map[string]string{middleware.UserIDHeader: "u2"})
	if strings.Contains(w.Body.String(), id) {
		t.Errorf("ripple leaked to another owner")
	}

	if w := do(t, h, http.MethodGet, "/api/v1/ripples", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("missing owner: expected 401, got %d", w.Code)
	}

	w = do(t, h, http.MethodGet, "/metrics", "", nil)
	if !strings.Contains(w.Body.String(), "ripples_entries_total") {
		t.Errorf("metrics missing orchestrator counters")
	}
}
