package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	title            TEXT NOT NULL,
	details          TEXT NOT NULL DEFAULT '',
	due_date         TEXT,
	recurrence       TEXT NOT NULL DEFAULT '',
	cluster_id       TEXT NOT NULL DEFAULT '',
	source_ripple_id TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks (user_id, created_at);

CREATE TABLE IF NOT EXISTS appointments (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	title            TEXT NOT NULL,
	date             TEXT NOT NULL,
	start_time       TEXT NOT NULL DEFAULT '',
	recurrence       TEXT NOT NULL DEFAULT '',
	cluster_id       TEXT NOT NULL DEFAULT '',
	source_ripple_id TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_appointments_user_date ON appointments (user_id, date);

CREATE TABLE IF NOT EXISTS important_events (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	title            TEXT NOT NULL,
	date             TEXT NOT NULL,
	cluster_id       TEXT NOT NULL DEFAULT '',
	source_ripple_id TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_important_events_user_date ON important_events (user_id, date);
`
