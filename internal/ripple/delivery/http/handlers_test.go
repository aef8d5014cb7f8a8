package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"journal-ripples/internal/middleware"
	"journal-ripples/internal/model"
	"journal-ripples/internal/ripple"
	"journal-ripples/pkg/log"
)

type mockUseCase struct {
	ripple.UseCase // unimplemented methods panic
	approveIn      ripple.ApproveInput
	listIn         ripple.ListInput
	err            error
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input ripple.ListInput) (ripple.ListOutput, error) {
	m.listIn = input
	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	return ripple.ListOutput{Ripples: []model.Ripple{{
		ID: "r1", EntryID: "e1", EntryDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Text: "send the slides this Friday", Type: model.RippleTypeTask, Confidence: 0.6,
		Band: model.BandMedium, Status: model.RippleStatusPending, DueDate: &due,
	}}}, m.err
}

func (m *mockUseCase) Approve(ctx context.Context, sc model.Scope, input ripple.ApproveInput) (ripple.ApproveOutput, error) {
	m.approveIn = input
	if m.err != nil {
		return ripple.ApproveOutput{}, m.err
	}
	return ripple.ApproveOutput{
		Ripple: model.Ripple{ID: input.ID, Status: model.RippleStatusApproved, TaskID: "t1"},
		Task:   &model.Task{ID: "t1"},
	}, nil
}

func (m *mockUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) (model.Ripple, error) {
	return model.Ripple{ID: id, Status: model.RippleStatusDismissed}, m.err
}

func (m *mockUseCase) AcceptSuggestedTask(ctx context.Context, sc model.Scope, id string) (ripple.AcceptSuggestedTaskOutput, error) {
	return ripple.AcceptSuggestedTaskOutput{}, m.err
}

func newRouter(uc ripple.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop()))
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "u1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newRouter(uc), http.MethodGet, "/api/v1/ripples?date=2024-06-10&status=pending", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.listIn.Status != model.RippleStatusPending || uc.listIn.Date.Day() != 10 {
		t.Errorf("unexpected input %+v", uc.listIn)
	}

	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := body.Data.Ripples[0]
	if got.Band != "medium" || *got.DueDate != "2024-06-14" || got.EntryDate != "2024-06-10" {
		t.Errorf("unexpected ripple %+v", got)
	}

	if w := do(newRouter(uc), http.MethodGet, "/api/v1/ripples?status=unknown", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad status filter: expected 400, got %d", w.Code)
	}
	if w := do(newRouter(uc), http.MethodGet, "/api/v1/ripples?date=10/06/2024", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad date: expected 400, got %d", w.Code)
	}
}

func TestApprove(t *testing.T) {
	t.Run("with overrides", func(t *testing.T) {
		uc := &mockUseCase{}
		w := do(newRouter(uc), http.MethodPost, "/api/v1/ripples/r1/approve", `{"cluster_id":"work","due_date":"2024-06-21"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.approveIn.ID != "r1" || uc.approveIn.ClusterID != "work" || uc.approveIn.DueDate == nil || uc.approveIn.DueDate.Day() != 21 {
			t.Errorf("unexpected input %+v", uc.approveIn)
		}
		var body struct {
			Data approveResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Data.EntityType != "task" || body.Data.EntityID != "t1" {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("empty body", func(t *testing.T) {
		uc := &mockUseCase{}
		if w := do(newRouter(uc), http.MethodPost, "/api/v1/ripples/r1/approve", ""); w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.approveIn.DueDate != nil {
			t.Errorf("no override expected, got %v", uc.approveIn.DueDate)
		}
	})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not pending is a conflict", ripple.ErrNotPending, http.StatusConflict},
		{"unknown ripple", ripple.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&mockUseCase{err: tt.err}), http.MethodPost, "/api/v1/ripples/r1/approve", "")
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}

	if w := do(newRouter(&mockUseCase{}), http.MethodPost, "/api/v1/ripples/r1/approve", `{"due_date":"soon"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad due date: expected 400, got %d", w.Code)
	}
}

func TestDismissAndAcceptConflicts(t *testing.T) {
	r := newRouter(&mockUseCase{err: ripple.ErrNotPending})
	if w := do(r, http.MethodPost, "/api/v1/ripples/r1/dismiss", ""); w.Code != http.StatusConflict {
		t.Errorf("dismiss: expected 409, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/v1/suggested-tasks/s1/accept", ""); w.Code != http.StatusConflict {
		t.Errorf("accept: expected 409, got %d", w.Code)
	}

	r = newRouter(&mockUseCase{})
	if w := do(r, http.MethodPost, "/api/v1/ripples/r1/dismiss", ""); w.Code != http.StatusOK {
		t.Errorf("dismiss: expected 200, got %d", w.Code)
	}
}
