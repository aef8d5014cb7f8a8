package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"journal-ripples/internal/model"
	"journal-ripples/internal/planner"
	plannerSqlite "journal-ripples/internal/planner/repository/sqlite"
	plannerUC "journal-ripples/internal/planner/usecase"
	"journal-ripples/internal/ripple"
	rippleSqlite "journal-ripples/internal/ripple/repository/sqlite"
	"journal-ripples/internal/ripple/usecase"
	"journal-ripples/pkg/log"
	"journal-ripples/pkg/sqlitedb"
)

var (
	ctx       = context.Background()
	owner     = model.Scope{UserID: "u1"}
	entryDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
)

// failingPlanner wraps a real planner and fails materialization on demand.
type failingPlanner struct {
	planner.UseCase
	fail  bool
	calls int
}

func (f *failingPlanner) CreateTask(ctx context.Context, sc model.Scope, input planner.CreateTaskInput) (model.Task, error) {
	f.calls++
	if f.fail {
		return model.Task{}, errors.New("store unavailable")
	}
	return f.UseCase.CreateTask(ctx, sc, input)
}

type fixture struct {
	uc      ripple.UseCase
	planner *failingPlanner
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := sqlitedb.Open(sqlitedb.MemoryPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := plannerSqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("planner Migrate: %v", err)
	}
	if err := rippleSqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("ripple Migrate: %v", err)
	}

	l := log.NewNop()
	p := &failingPlanner{UseCase: plannerUC.New(plannerSqlite.New(db, l), l, nil)}
	return fixture{uc: usecase.New(rippleSqlite.New(db, l), p, l), planner: p}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleDrafts() []ripple.Draft {
	return []ripple.Draft{
		{
			Text: "send the slides this Friday", OriginalContext: "Remember to send the slides this Friday",
			Type: model.RippleTypeTask, Confidence: 0.6, DueDate: day(2024, 6, 14),
		},
		{
			Text: "water the plants (friday)", OriginalContext: "Every Friday I need to water the plants",
			Type: model.RippleTypeRecurringTask, Confidence: 0.7, Recurrence: "FREQ=WEEKLY;BYDAY=FR", Priority: model.PriorityLow,
		},
		{
			Text: "lunch with Sam at noon on Friday", OriginalContext: "lunch with Sam at noon on Friday",
			Type: model.RippleTypeAppointment, Confidence: 0.75, DueDate: day(2024, 6, 14), DueTime: "12:00",
		},
		{
			Text: "Mia's birthday is on June 5", OriginalContext: "Mia's birthday is on June 5",
			Type: model.RippleTypeImportantEvent, Confidence: 0.7, DueDate: day(2025, 6, 5),
		},
	}
}

func create(t *testing.T, f fixture) ripple.CreateOutput {
	t.Helper()
	out, err := f.uc.Create(ctx, owner, ripple.CreateInput{EntryID: "e1", EntryDate: entryDate, Drafts: sampleDrafts()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return out
}

func TestCreatePairsSuggestedTasks(t *testing.T) {
	f := newFixture(t)
	out := create(t, f)

	if len(out.Ripples) != 4 || out.Dropped != 0 {
		t.Fatalf("expected 4 ripples, got %d (dropped %d)", len(out.Ripples), out.Dropped)
	}
	if len(out.SuggestedTasks) != 2 {
		t.Fatalf("expected suggested tasks for the two task-like ripples, got %d", len(out.SuggestedTasks))
	}
	weekly := out.SuggestedTasks[1]
	if weekly.RepeatLabel != "weekly on Friday" || weekly.Priority != model.PriorityLow {
		t.Errorf("recurring draft = %+v", weekly)
	}
	if out.SuggestedTasks[0].Priority != model.PriorityMedium {
		t.Errorf("default priority = %q", out.SuggestedTasks[0].Priority)
	}
}

func TestCreateToleratesPartialFailure(t *testing.T) {
	f := newFixture(t)
	drafts := append(sampleDrafts(), sampleDrafts()[0], ripple.Draft{Text: "  ", Type: model.RippleTypeTask})

	out, err := f.uc.Create(ctx, owner, ripple.CreateInput{EntryID: "e1", EntryDate: entryDate, Drafts: drafts})
	if err != nil {
		t.Fatalf("Create must not fail on per-draft errors: %v", err)
	}
	if len(out.Ripples) != 4 || out.Dropped != 2 {
		t.Errorf("expected 4 kept and 2 dropped, got %d / %d", len(out.Ripples), out.Dropped)
	}

	if _, err := f.uc.Create(ctx, owner, ripple.CreateInput{Drafts: drafts}); !errors.Is(err, ripple.ErrEntryRequired) {
		t.Errorf("expected ErrEntryRequired, got %v", err)
	}
}

func TestApproveMaterializesByType(t *testing.T) {
	f := newFixture(t)
	out := create(t, f)

	task, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: out.Ripples[0].ID, ClusterID: "work"})
	if err != nil {
		t.Fatalf("Approve task: %v", err)
	}
	if task.Task == nil || task.Appointment != nil || task.Event != nil {
		t.Fatalf("task ripple must create exactly one task, got %+v", task)
	}
	if task.Ripple.TaskID != task.Task.ID || task.Ripple.Status != model.RippleStatusApproved {
		t.Errorf("ripple not linked: %+v", task.Ripple)
	}
	if !task.Task.DueDate.Equal(*day(2024, 6, 14)) || task.Task.ClusterID != "work" {
		t.Errorf("task = %+v", task.Task)
	}

	recurring, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: out.Ripples[1].ID})
	if err != nil {
		t.Fatalf("Approve recurring: %v", err)
	}
	if recurring.Task.Recurrence != "FREQ=WEEKLY;BYDAY=FR" {
		t.Errorf("recurring task rule = %q", recurring.Task.Recurrence)
	}
	if !recurring.Task.DueDate.Equal(entryDate) {
		t.Errorf("undated ripple should fall back to the entry date, got %v", recurring.Task.DueDate)
	}

	appt, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: out.Ripples[2].ID, DueDate: day(2024, 6, 21)})
	if err != nil {
		t.Fatalf("Approve appointment: %v", err)
	}
	if appt.Appointment == nil || appt.Appointment.StartTime != "12:00" || !appt.Appointment.Date.Equal(*day(2024, 6, 21)) {
		t.Errorf("override due date not applied: %+v", appt.Appointment)
	}

	event, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: out.Ripples[3].ID})
	if err != nil {
		t.Fatalf("Approve event: %v", err)
	}
	if event.Event == nil || event.Ripple.EventID != event.Event.ID {
		t.Errorf("event = %+v", event)
	}
}

func TestLifecycleMonotonicity(t *testing.T) {
	f := newFixture(t)
	out := create(t, f)
	id := out.Ripples[0].ID

	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: id}); err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: id}); !errors.Is(err, ripple.ErrNotPending) {
		t.Errorf("second Approve: expected ErrNotPending, got %v", err)
	}
	if _, err := f.uc.Dismiss(ctx, owner, id); !errors.Is(err, ripple.ErrNotPending) {
		t.Errorf("Dismiss after approve: expected ErrNotPending, got %v", err)
	}
	if f.planner.calls != 1 {
		t.Errorf("expected one downstream task, got %d creations", f.planner.calls)
	}

	dismissed := out.Ripples[1].ID
	if _, err := f.uc.Dismiss(ctx, owner, dismissed); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: dismissed}); !errors.Is(err, ripple.ErrNotPending) {
		t.Errorf("Approve after dismiss: expected ErrNotPending, got %v", err)
	}

	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: "missing"}); !errors.Is(err, ripple.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.uc.Approve(ctx, model.Scope{UserID: "u2"}, ripple.ApproveInput{ID: id}); !errors.Is(err, ripple.ErrNotFound) {
		t.Errorf("other owner: expected ErrNotFound, got %v", err)
	}
}

func TestApproveFailureReleasesClaim(t *testing.T) {
	f := newFixture(t)
	out := create(t, f)
	id := out.Ripples[0].ID

	f.planner.fail = true
	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: id, ClusterID: "work"}); err == nil {
		t.Fatal("expected materialization error")
	}

	list, err := f.uc.List(ctx, owner, ripple.ListInput{Status: model.RippleStatusPending})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var found bool
	for _, rp := range list.Ripples {
		if rp.ID == id {
			found = true
			if rp.ClusterID != "" {
				t.Errorf("cluster assignment should be rolled back, got %q", rp.ClusterID)
			}
		}
	}
	if !found {
		t.Fatal("ripple should be pending again")
	}

	f.planner.fail = false
	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: id}); err != nil {
		t.Errorf("retry after release: %v", err)
	}
}

func TestRegenerationIsolation(t *testing.T) {
	f := newFixture(t)
	first := create(t, f)

	if _, err := f.uc.Approve(ctx, owner, ripple.ApproveInput{ID: first.Ripples[0].ID}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := f.uc.Dismiss(ctx, owner, first.Ripples[1].ID); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}

	regen, err := f.uc.RegenerateForEntry(ctx, owner, ripple.CreateInput{
		EntryID: "e1", EntryDate: entryDate,
		Drafts: []ripple.Draft{{Text: "renew the license by next week", OriginalContext: "Gotta renew the license by next week", Type: model.RippleTypeTask, Confidence: 0.6}},
	})
	if err != nil {
		t.Fatalf("RegenerateForEntry: %v", err)
	}
	if regen.Deleted != 4 || len(regen.Ripples) != 1 {
		t.Errorf("expected 4 deleted and 1 created, got %d / %d", regen.Deleted, len(regen.Ripples))
	}

	list, err := f.uc.List(ctx, owner, ripple.ListInput{EntryID: "e1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	old := map[string]bool{}
	for _, rp := range first.Ripples {
		old[rp.ID] = true
	}
	for _, rp := range list.Ripples {
		if old[rp.ID] {
			t.Errorf("old ripple %s survived regeneration", rp.ID)
		}
	}
	if len(list.Ripples) != 1 || list.Ripples[0].ID != regen.Ripples[0].ID {
		t.Errorf("unexpected ripples after regeneration: %+v", list.Ripples)
	}

	drafts, err := f.uc.ListSuggestedTasks(ctx, owner, ripple.ListSuggestedTasksInput{EntryID: "e1"})
	if err != nil {
		t.Fatalf("ListSuggestedTasks: %v", err)
	}
	if len(drafts.SuggestedTasks) != 1 {
		t.Errorf("old suggested tasks should be gone, got %d", len(drafts.SuggestedTasks))
	}

	deleted, err := f.uc.DeleteForEntry(ctx, owner, "e1")
	if err != nil || deleted.Deleted != 1 || len(deleted.Ripples) != 0 {
		t.Errorf("DeleteForEntry = %+v, %v", deleted, err)
	}
}

func TestSuggestedTaskReview(t *testing.T) {
	f := newFixture(t)
	out := create(t, f)
	weekly := out.SuggestedTasks[1]

	accepted, err := f.uc.AcceptSuggestedTask(ctx, owner, weekly.ID)
	if err != nil {
		t.Fatalf("AcceptSuggestedTask: %v", err)
	}
	if accepted.Task.Recurrence != "FREQ=WEEKLY;BYDAY=FR" || accepted.SuggestedTask.TaskID != accepted.Task.ID {
		t.Errorf("accepted = %+v", accepted)
	}
	if _, err := f.uc.AcceptSuggestedTask(ctx, owner, weekly.ID); !errors.Is(err, ripple.ErrNotPending) {
		t.Errorf("second accept: expected ErrNotPending, got %v", err)
	}

	// Accepting the draft leaves the ripple reviewable on its own.
	pending, err := f.uc.List(ctx, owner, ripple.ListInput{Status: model.RippleStatusPending, Date: entryDate})
	if err != nil || len(pending.Ripples) != 4 {
		t.Errorf("ripples should stay pending, got %d, %v", len(pending.Ripples), err)
	}

	rejected, err := f.uc.RejectSuggestedTask(ctx, owner, out.SuggestedTasks[0].ID)
	if err != nil || rejected.Status != model.SuggestedTaskRejected {
		t.Fatalf("RejectSuggestedTask = %+v, %v", rejected, err)
	}

	list, err := f.uc.ListSuggestedTasks(ctx, owner, ripple.ListSuggestedTasksInput{Status: model.SuggestedTaskPending})
	if err != nil || len(list.SuggestedTasks) != 0 {
		t.Errorf("no pending drafts expected, got %+v, %v", list.SuggestedTasks, err)
	}

	if _, err := f.uc.RejectSuggestedTask(ctx, owner, "missing"); !errors.Is(err, ripple.ErrSuggestedTaskNotFound) {
		t.Errorf("expected ErrSuggestedTaskNotFound, got %v", err)
	}
}

func TestAcceptFailureReleasesDraft(t *testing.T) {
	f := newFixture(t)
	out := create(t, f)
	f.planner.fail = true

	if _, err := f.uc.AcceptSuggestedTask(ctx, owner, out.SuggestedTasks[0].ID); err == nil {
		t.Fatal("expected error")
	}
	list, err := f.uc.ListSuggestedTasks(ctx, owner, ripple.ListSuggestedTasksInput{Status: model.SuggestedTaskPending})
	if err != nil || len(list.SuggestedTasks) != 2 {
		t.Errorf("draft should be pending again, got %d, %v", len(list.SuggestedTasks), err)
	}
}
