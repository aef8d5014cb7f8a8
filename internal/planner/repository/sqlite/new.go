package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"journal-ripples/internal/planner/repository"
	"journal-ripples/pkg/log"
	"journal-ripples/pkg/sqlitedb"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
	id  func() string
}

// New creates a new SQLite-backed Repository for the planner domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("planner/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now, id: uuid.NewString}
}

// Migrate creates the planner tables when they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	return sqlitedb.Migrate(ctx, db, schema)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("planner/repository/sqlite.%s", method)
}
