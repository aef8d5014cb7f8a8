package sqlite

// A ripple is unique per owner, entry and matched context; concurrent
// duplicate inserts fail individually.
const schema = `
CREATE TABLE IF NOT EXISTS ripples (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	entry_id         TEXT NOT NULL,
	entry_date       TEXT NOT NULL,
	text             TEXT NOT NULL,
	original_context TEXT NOT NULL,
	type             TEXT NOT NULL,
	confidence       REAL NOT NULL,
	status           TEXT NOT NULL DEFAULT 'pending',
	due_date         TEXT,
	due_time         TEXT NOT NULL DEFAULT '',
	recurrence       TEXT NOT NULL DEFAULT '',
	cluster_id       TEXT NOT NULL DEFAULT '',
	task_id          TEXT NOT NULL DEFAULT '',
	appointment_id   TEXT NOT NULL DEFAULT '',
	event_id         TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL,
	UNIQUE (user_id, entry_id, original_context)
);
CREATE INDEX IF NOT EXISTS idx_ripples_user_date ON ripples (user_id, entry_date);
CREATE INDEX IF NOT EXISTS idx_ripples_user_entry ON ripples (user_id, entry_id);

CREATE TABLE IF NOT EXISTS suggested_tasks (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	ripple_id    TEXT NOT NULL REFERENCES ripples (id) ON DELETE CASCADE,
	entry_id     TEXT NOT NULL,
	title        TEXT NOT NULL,
	priority     TEXT NOT NULL DEFAULT 'medium',
	due_date     TEXT,
	repeat_label TEXT NOT NULL DEFAULT '',
	cluster_id   TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'pending',
	task_id      TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_suggested_tasks_user_status ON suggested_tasks (user_id, status);
CREATE INDEX IF NOT EXISTS idx_suggested_tasks_ripple ON suggested_tasks (ripple_id);
`
