package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"journal-ripples/internal/model"
	repo "journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/sqlitedb"
)

const appointmentColumns = `id, user_id, title, date, start_time, recurrence, cluster_id, source_ripple_id, created_at`

// CreateAppointment inserts a new Appointment row. A non-empty Recurrence
// stores a series anchored at Date.
func (r *implRepository) CreateAppointment(ctx context.Context, opt repo.CreateAppointmentOptions) (model.Appointment, error) {
	a := model.Appointment{
		ID:             r.id(),
		UserID:         opt.UserID,
		Title:          opt.Title,
		Date:           opt.Date,
		StartTime:      opt.StartTime,
		Recurrence:     opt.Recurrence,
		ClusterID:      opt.ClusterID,
		SourceRippleID: opt.SourceRippleID,
		CreatedAt:      r.now().UTC(),
	}

	const query = `INSERT INTO appointments (` + appointmentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.Title, sqlitedb.FormatDay(a.Date), a.StartTime,
		a.Recurrence, a.ClusterID, a.SourceRippleID, sqlitedb.FormatTimestamp(a.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAppointment"), err)
		return model.Appointment{}, repo.ErrFailedToInsert
	}
	return a, nil
}

// GetOneAppointment finds the appointment matching the upsert key.
// Returns a zero-value Appointment (ID == "") when not found.
func (r *implRepository) GetOneAppointment(ctx context.Context, opt repo.GetOneAppointmentOptions) (model.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE user_id = ? AND lower(title) = lower(?) AND date = ? AND start_time = ?
		LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, opt.UserID, opt.Title, sqlitedb.FormatDay(opt.Date), opt.StartTime)
	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Appointment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAppointment"), err)
		return model.Appointment{}, repo.ErrFailedToGet
	}
	return a, nil
}

// ListAppointments returns one-offs inside the range, or series anchored on
// or before its end, ordered by date and start time.
func (r *implRepository) ListAppointments(ctx context.Context, opt repo.ListAppointmentsOptions) ([]model.Appointment, error) {
	var (
		query string
		args  []any
	)
	if opt.Series {
		query = `SELECT ` + appointmentColumns + ` FROM appointments
			WHERE user_id = ? AND recurrence != '' AND date <= ?
			ORDER BY date, start_time`
		args = []any{opt.UserID, sqlitedb.FormatDay(opt.To)}
	} else {
		query = `SELECT ` + appointmentColumns + ` FROM appointments
			WHERE user_id = ? AND recurrence = '' AND date >= ? AND date <= ?
			ORDER BY date, start_time`
		args = []any{opt.UserID, sqlitedb.FormatDay(opt.From), sqlitedb.FormatDay(opt.To)}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAppointments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAppointments"), err)
			return nil, repo.ErrFailedToList
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListAppointments"), err)
		return nil, repo.ErrFailedToList
	}
	return appts, nil
}

func scanAppointment(s interface{ Scan(...any) error }) (model.Appointment, error) {
	var (
		a               model.Appointment
		date, createdAt string
	)
	if err := s.Scan(&a.ID, &a.UserID, &a.Title, &date, &a.StartTime, &a.Recurrence, &a.ClusterID, &a.SourceRippleID, &createdAt); err != nil {
		return model.Appointment{}, err
	}
	var err error
	if a.Date, err = sqlitedb.ParseDay(date); err != nil {
		return model.Appointment{}, err
	}
	if a.CreatedAt, err = sqlitedb.ParseTimestamp(createdAt); err != nil {
		return model.Appointment{}, err
	}
	return a, nil
}
