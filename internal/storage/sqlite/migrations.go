package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// list_entries and list_events reference lists by the public list id.
const schema = `
CREATE TABLE IF NOT EXISTS lists (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    listid TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    owner TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS list_entries (
    listid TEXT NOT NULL,
    item_id TEXT NOT NULL,
    name TEXT NOT NULL,
    checked INTEGER NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (listid, item_id),
    FOREIGN KEY (listid) REFERENCES lists(listid) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS list_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    listid TEXT NOT NULL,
    event TEXT NOT NULL,
    entry_id TEXT NOT NULL,
    state TEXT NOT NULL,
    iso_date TEXT NOT NULL,
    FOREIGN KEY (listid) REFERENCES lists(listid) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_lists_owner ON lists(owner);
CREATE INDEX IF NOT EXISTS idx_list_entries_listid ON list_entries(listid, checked, position);
CREATE INDEX IF NOT EXISTS idx_list_events_listid ON list_events(listid);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
