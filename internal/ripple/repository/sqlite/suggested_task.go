package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"journal-ripples/internal/model"
	repo "journal-ripples/internal/ripple/repository"
	"journal-ripples/pkg/sqlitedb"
)

const suggestedTaskColumns = `id, user_id, ripple_id, entry_id, title, priority, due_date, repeat_label,
	cluster_id, status, task_id, created_at, updated_at`

// CreateSuggestedTask inserts one pending draft for a ripple.
func (r *implRepository) CreateSuggestedTask(ctx context.Context, opt repo.CreateSuggestedTaskOptions) (model.SuggestedTask, error) {
	now := r.now().UTC()
	st := model.SuggestedTask{
		ID:          r.id(),
		UserID:      opt.UserID,
		RippleID:    opt.RippleID,
		EntryID:     opt.EntryID,
		Title:       opt.Title,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		RepeatLabel: opt.RepeatLabel,
		ClusterID:   opt.ClusterID,
		Status:      model.SuggestedTaskPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `INSERT INTO suggested_tasks (` + suggestedTaskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?)`
	ts := sqlitedb.FormatTimestamp(now)
	_, err := r.db.ExecContext(ctx, query,
		st.ID, st.UserID, st.RippleID, st.EntryID, st.Title, string(st.Priority), sqlitedb.NullDay(st.DueDate),
		st.RepeatLabel, st.ClusterID, string(st.Status), ts, ts,
	)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("CreateSuggestedTask"), err)
		return model.SuggestedTask{}, repo.ErrFailedToInsert
	}
	return st, nil
}

// GetOneSuggestedTask returns the owner's draft, or a zero value when not found.
func (r *implRepository) GetOneSuggestedTask(ctx context.Context, opt repo.GetOneOptions) (model.SuggestedTask, error) {
	const query = `SELECT ` + suggestedTaskColumns + ` FROM suggested_tasks WHERE id = ? AND user_id = ? LIMIT 1`

	st, err := scanSuggestedTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SuggestedTask{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSuggestedTask"), err)
		return model.SuggestedTask{}, repo.ErrFailedToGet
	}
	return st, nil
}

// ListSuggestedTasks returns matching drafts, oldest first.
func (r *implRepository) ListSuggestedTasks(ctx context.Context, opt repo.ListSuggestedTasksOptions) ([]model.SuggestedTask, error) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}
	if opt.EntryID != "" {
		conditions = append(conditions, "entry_id = ?")
		args = append(args, opt.EntryID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	query := fmt.Sprintf(`SELECT %s FROM suggested_tasks WHERE %s ORDER BY rowid`, suggestedTaskColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSuggestedTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.SuggestedTask
	for rows.Next() {
		st, err := scanSuggestedTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSuggestedTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, st)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSuggestedTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// ClaimSuggestedTask moves a pending draft to opt.Status in one conditional write.
func (r *implRepository) ClaimSuggestedTask(ctx context.Context, opt repo.ClaimSuggestedTaskOptions) (bool, error) {
	const query = `UPDATE suggested_tasks SET status = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, string(opt.Status), r.timestamp(), opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClaimSuggestedTask"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("ClaimSuggestedTask"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}

// ReleaseSuggestedTask undoes an acceptance claim that never got linked.
func (r *implRepository) ReleaseSuggestedTask(ctx context.Context, opt repo.GetOneOptions) error {
	const query = `UPDATE suggested_tasks SET status = 'pending', updated_at = ?
		WHERE id = ? AND user_id = ? AND status = 'accepted' AND task_id = ''`

	if _, err := r.db.ExecContext(ctx, query, r.timestamp(), opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReleaseSuggestedTask"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// LinkSuggestedTask records the task id on an accepted draft.
func (r *implRepository) LinkSuggestedTask(ctx context.Context, opt repo.LinkSuggestedTaskOptions) error {
	const query = `UPDATE suggested_tasks SET task_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND status = 'accepted'`

	res, err := r.db.ExecContext(ctx, query, opt.TaskID, r.timestamp(), opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LinkSuggestedTask"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n != 1 {
		r.l.Errorf(ctx, "%s: suggested task %s not accepted", r.dsn("LinkSuggestedTask"), opt.ID)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func scanSuggestedTask(s interface{ Scan(...any) error }) (model.SuggestedTask, error) {
	var (
		st                   model.SuggestedTask
		priority, status     string
		due                  sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(&st.ID, &st.UserID, &st.RippleID, &st.EntryID, &st.Title, &priority, &due, &st.RepeatLabel,
		&st.ClusterID, &status, &st.TaskID, &createdAt, &updatedAt)
	if err != nil {
		return model.SuggestedTask{}, err
	}
	st.Priority = model.Priority(priority)
	st.Status = model.SuggestedTaskStatus(status)

	if st.DueDate, err = sqlitedb.ScanDay(due); err != nil {
		return model.SuggestedTask{}, err
	}
	if st.CreatedAt, err = sqlitedb.ParseTimestamp(createdAt); err != nil {
		return model.SuggestedTask{}, err
	}
	if st.UpdatedAt, err = sqlitedb.ParseTimestamp(updatedAt); err != nil {
		return model.SuggestedTask{}, err
	}
	return st, nil
}
