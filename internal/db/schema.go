package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS motors (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    brand       TEXT,
    year        INTEGER,
    price       REAL,
    description TEXT,
    image       BLOB,
    image_mime  TEXT
);

CREATE TABLE IF NOT EXISTS purchases (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    motor_id     INTEGER REFERENCES motors(id),
    buyer_name   TEXT,
    phone        TEXT,
    address      TEXT,
    price_paid   REAL,
    purchased_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_purchases_purchased_at
    ON purchases(purchased_at);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
