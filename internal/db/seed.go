package db

import (
	"context"
	"database/sql"
	"fmt"
)

type sampleMotor struct {
	title, brand string
	year         int
	price        float64
	description  string
}

var samples = []sampleMotor{
	{"Honda CB150R", "Honda", 2019, 30000000, "Motor sport 150cc, kondisi baik."},
	{"Yamaha NMAX", "Yamaha", 2020, 25000000, "Skutik nyaman, irit bahan bakar."},
	{"Suzuki Satria", "Suzuki", 2018, 18000000, "Bebek cepat, perawatan mudah."},
}

// Seed inserts the sample motors when the catalog is empty and returns the
// number of rows inserted. Running it against a non-empty catalog is a no-op.
func Seed(ctx context.Context, db *sql.DB) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM motors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting motors: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, m := range samples {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO motors (title, brand, year, price, description) VALUES (?, ?, ?, ?, ?)`,
			m.title, m.brand, m.year, m.price, m.description,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting sample %q: %w", m.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}
	return len(samples), nil
}
