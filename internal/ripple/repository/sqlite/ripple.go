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

const rippleColumns = `id, user_id, entry_id, entry_date, text, original_context, type, confidence, status,
	due_date, due_time, recurrence, cluster_id, task_id, appointment_id, event_id, created_at, updated_at`

// CreateRipple inserts one pending ripple.
func (r *implRepository) CreateRipple(ctx context.Context, opt repo.CreateRippleOptions) (model.Ripple, error) {
	now := r.now().UTC()
	rp := model.Ripple{
		ID:              r.id(),
		UserID:          opt.UserID,
		EntryID:         opt.EntryID,
		EntryDate:       opt.EntryDate,
		Text:            opt.Text,
		OriginalContext: opt.OriginalContext,
		Type:            opt.Type,
		Confidence:      opt.Confidence,
		Band:            model.BandOf(opt.Confidence),
		Status:          model.RippleStatusPending,
		DueDate:         opt.DueDate,
		DueTime:         opt.DueTime,
		Recurrence:      opt.Recurrence,
		ClusterID:       opt.ClusterID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	const query = `INSERT INTO ripples (` + rippleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', '', '', ?, ?)`
	ts := sqlitedb.FormatTimestamp(now)
	_, err := r.db.ExecContext(ctx, query,
		rp.ID, rp.UserID, rp.EntryID, sqlitedb.FormatDay(rp.EntryDate), rp.Text, rp.OriginalContext,
		string(rp.Type), rp.Confidence, string(rp.Status), sqlitedb.NullDay(rp.DueDate), rp.DueTime,
		rp.Recurrence, rp.ClusterID, ts, ts,
	)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("CreateRipple"), err)
		return model.Ripple{}, repo.ErrFailedToInsert
	}
	return rp, nil
}

// GetOneRipple returns the owner's ripple, or a zero value when not found.
func (r *implRepository) GetOneRipple(ctx context.Context, opt repo.GetOneOptions) (model.Ripple, error) {
	const query = `SELECT ` + rippleColumns + ` FROM ripples WHERE id = ? AND user_id = ? LIMIT 1`

	rp, err := scanRipple(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ripple{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRipple"), err)
		return model.Ripple{}, repo.ErrFailedToGet
	}
	return rp, nil
}

// ListRipples returns matching ripples in entry-date then insertion order.
func (r *implRepository) ListRipples(ctx context.Context, opt repo.ListRipplesOptions) ([]model.Ripple, error) {
	mods, args := r.buildListRipplesQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM ripples WHERE %s ORDER BY entry_date, rowid`, rippleColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRipples"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ripples []model.Ripple
	for rows.Next() {
		rp, err := scanRipple(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRipples"), err)
			return nil, repo.ErrFailedToList
		}
		ripples = append(ripples, rp)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRipples"), err)
		return nil, repo.ErrFailedToList
	}
	return ripples, nil
}

// ClaimRipple moves a pending ripple to opt.Status in one conditional write.
func (r *implRepository) ClaimRipple(ctx context.Context, opt repo.ClaimRippleOptions) (bool, error) {
	const query = `UPDATE ripples
		SET status = ?, cluster_id = COALESCE(NULLIF(?, ''), cluster_id), updated_at = ?
		WHERE id = ? AND user_id = ? AND status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, string(opt.Status), opt.ClusterID, r.timestamp(), opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClaimRipple"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("ClaimRipple"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}

// ReleaseRipple undoes an approval claim that never got linked.
func (r *implRepository) ReleaseRipple(ctx context.Context, opt repo.ReleaseRippleOptions) error {
	const query = `UPDATE ripples
		SET status = 'pending', cluster_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND status = 'approved'
		  AND task_id = '' AND appointment_id = '' AND event_id = ''`

	if _, err := r.db.ExecContext(ctx, query, opt.ClusterID, r.timestamp(), opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReleaseRipple"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// LinkRipple records the materialized entity id on an approved ripple.
func (r *implRepository) LinkRipple(ctx context.Context, opt repo.LinkRippleOptions) error {
	const query = `UPDATE ripples
		SET task_id = ?, appointment_id = ?, event_id = ?, due_date = COALESCE(?, due_date), updated_at = ?
		WHERE id = ? AND user_id = ? AND status = 'approved'`

	res, err := r.db.ExecContext(ctx, query,
		opt.TaskID, opt.AppointmentID, opt.EventID, sqlitedb.NullDay(opt.DueDate), r.timestamp(), opt.ID, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LinkRipple"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n != 1 {
		r.l.Errorf(ctx, "%s: ripple %s not approved", r.dsn("LinkRipple"), opt.ID)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteRipplesByEntry removes every ripple of the entry regardless of status.
// Suggested tasks go with them through the foreign key.
func (r *implRepository) DeleteRipplesByEntry(ctx context.Context, opt repo.DeleteByEntryOptions) (int, error) {
	const query = `DELETE FROM ripples WHERE user_id = ? AND entry_id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.UserID, opt.EntryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRipplesByEntry"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteRipplesByEntry"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(n), nil
}

func (r *implRepository) buildListRipplesQuery(opt repo.ListRipplesOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.EntryID != "" {
		conditions = append(conditions, "entry_id = ?")
		args = append(args, opt.EntryID)
	}
	if !opt.EntryDate.IsZero() {
		conditions = append(conditions, "entry_date = ?")
		args = append(args, sqlitedb.FormatDay(opt.EntryDate))
	}
	if opt.ClusterID != "" {
		conditions = append(conditions, "cluster_id = ?")
		args = append(args, opt.ClusterID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	return strings.Join(conditions, " AND "), args
}

func scanRipple(s interface{ Scan(...any) error }) (model.Ripple, error) {
	var (
		rp                   model.Ripple
		entryDate            string
		typ, status          string
		due                  sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(&rp.ID, &rp.UserID, &rp.EntryID, &entryDate, &rp.Text, &rp.OriginalContext, &typ, &rp.Confidence, &status,
		&due, &rp.DueTime, &rp.Recurrence, &rp.ClusterID, &rp.TaskID, &rp.AppointmentID, &rp.EventID, &createdAt, &updatedAt)
	if err != nil {
		return model.Ripple{}, err
	}
	rp.Type = model.RippleType(typ)
	rp.Status = model.RippleStatus(status)
	rp.Band = model.BandOf(rp.Confidence)

	if rp.EntryDate, err = sqlitedb.ParseDay(entryDate); err != nil {
		return model.Ripple{}, err
	}
	if rp.DueDate, err = sqlitedb.ScanDay(due); err != nil {
		return model.Ripple{}, err
	}
	if rp.CreatedAt, err = sqlitedb.ParseTimestamp(createdAt); err != nil {
		return model.Ripple{}, err
	}
	if rp.UpdatedAt, err = sqlitedb.ParseTimestamp(updatedAt); err != nil {
		return model.Ripple{}, err
	}
	return rp, nil
}
