package storage

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations. Versions are
// sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT,
	status      TEXT NOT NULL DEFAULT 'pending',
	priority    TEXT NOT NULL DEFAULT 'medium',
	due_date    DATETIME,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT,
	price       TEXT NOT NULL,
	sku         TEXT NOT NULL UNIQUE,
	category    TEXT,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id      INTEGER NOT NULL,
	quantity        INTEGER NOT NULL DEFAULT 0,
	min_stock_level INTEGER NOT NULL DEFAULT 0,
	max_stock_level INTEGER NOT NULL DEFAULT 1,
	location        TEXT,
	created_at      DATETIME NOT NULL,
	last_updated    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL UNIQUE,
	phone       TEXT,
	address     TEXT,
	company     TEXT,
	status      TEXT NOT NULL DEFAULT 'active',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	message     TEXT NOT NULL,
	type        TEXT NOT NULL,
	read        INTEGER NOT NULL DEFAULT 0,
	entity_type TEXT,
	entity_id   INTEGER,
	created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks(priority);
CREATE INDEX IF NOT EXISTS idx_inventory_product ON inventory(product_id);
CREATE INDEX IF NOT EXISTS idx_notifications_entity ON notifications(entity_type, entity_id);
CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read);
`,
	},
}
