package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

const sessionSecretKey = "session_secret"

// GetSessionSecret returns the key that signs flash cookies, creating a
// random one on first use so notices survive restarts.
func GetSessionSecret(ctx context.Context, db *sql.DB) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return settingOrDefault(ctx, db, sessionSecretKey, hex.EncodeToString(raw))
}

// settingOrDefault stores def under key unless a value is already present and
// returns whichever value the table ends up holding. Two processes starting
// at once agree on the first writer's value.
func settingOrDefault(ctx context.Context, db *sql.DB, key, def string) (string, error) {
	if _, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
		key, def,
	); err != nil {
		return "", fmt.Errorf("setting %s: %w", key, err)
	}

	var value string
	if err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value); err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}
