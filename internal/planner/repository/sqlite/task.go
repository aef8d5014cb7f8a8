package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"journal-ripples/internal/model"
	repo "journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/sqlitedb"
)

const taskColumns = `id, user_id, title, details, due_date, recurrence, cluster_id, source_ripple_id, created_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:             r.id(),
		UserID:         opt.UserID,
		Title:          opt.Title,
		Details:        opt.Details,
		DueDate:        opt.DueDate,
		Recurrence:     opt.Recurrence,
		ClusterID:      opt.ClusterID,
		SourceRippleID: opt.SourceRippleID,
		CreatedAt:      r.now().UTC(),
	}

	const query = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Details, sqlitedb.NullDay(t.DueDate),
		t.Recurrence, t.ClusterID, t.SourceRippleID, sqlitedb.FormatTimestamp(t.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// ListTasks returns the owner's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.ClusterID != "" {
		conditions = append(conditions, "cluster_id = ?")
		args = append(args, opt.ClusterID)
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC`, taskColumns, strings.Join(conditions, " AND "))
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

func scanTask(s interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t         model.Task
		due       sql.NullString
		createdAt string
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Details, &due, &t.Recurrence, &t.ClusterID, &t.SourceRippleID, &createdAt); err != nil {
		return model.Task{}, err
	}
	var err error
	if t.DueDate, err = sqlitedb.ScanDay(due); err != nil {
		return model.Task{}, err
	}
	if t.CreatedAt, err = sqlitedb.ParseTimestamp(createdAt); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
