package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"journal-ripples/internal/model"
	repo "journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/sqlitedb"
)

const eventColumns = `id, user_id, title, date, cluster_id, source_ripple_id, created_at`

// CreateEvent inserts a new ImportantEvent row.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.ImportantEvent, error) {
	e := model.ImportantEvent{
		ID:             r.id(),
		UserID:         opt.UserID,
		Title:          opt.Title,
		Date:           opt.Date,
		ClusterID:      opt.ClusterID,
		SourceRippleID: opt.SourceRippleID,
		CreatedAt:      r.now().UTC(),
	}

	const query = `INSERT INTO important_events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Title, sqlitedb.FormatDay(e.Date),
		e.ClusterID, e.SourceRippleID, sqlitedb.FormatTimestamp(e.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.ImportantEvent{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneEvent finds the event matching the upsert key.
// Returns a zero-value ImportantEvent (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.ImportantEvent, error) {
	const query = `SELECT ` + eventColumns + ` FROM important_events
		WHERE user_id = ? AND lower(title) = lower(?) AND date = ?
		LIMIT 1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, opt.UserID, opt.Title, sqlitedb.FormatDay(opt.Date)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ImportantEvent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.ImportantEvent{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns the owner's events dated inside the range.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.ImportantEvent, error) {
	const query = `SELECT ` + eventColumns + ` FROM important_events
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date, title`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, sqlitedb.FormatDay(opt.From), sqlitedb.FormatDay(opt.To))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.ImportantEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

func scanEvent(s interface{ Scan(...any) error }) (model.ImportantEvent, error) {
	var (
		e               model.ImportantEvent
		date, createdAt string
	)
	if err := s.Scan(&e.ID, &e.UserID, &e.Title, &date, &e.ClusterID, &e.SourceRippleID, &createdAt); err != nil {
		return model.ImportantEvent{}, err
	}
	var err error
	if e.Date, err = sqlitedb.ParseDay(date); err != nil {
		return model.ImportantEvent{}, err
	}
	if e.CreatedAt, err = sqlitedb.ParseTimestamp(createdAt); err != nil {
		return model.ImportantEvent{}, err
	}
	return e, nil
}
