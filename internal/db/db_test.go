package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSeedInsertsSamplesOnce(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	n, err := Seed(ctx, database)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 seeded motors, got %d", n)
	}

	rows, err := database.Query(`SELECT title, brand, year, price, description FROM motors ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var i int
	for rows.Next() {
		var title, brand, description string
		var year int
		var price float64
		if err := rows.Scan(&title, &brand, &year, &price, &description); err != nil {
			t.Fatalf("scan: %v", err)
		}
		want := samples[i]
		if title != want.title || brand != want.brand || year != want.year || price != want.price || description != want.description {
			t.Errorf("row %d: got (%q, %q, %d, %v, %q), want %+v", i, title, brand, year, price, description, want)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if i != 3 {
		t.Fatalf("expected 3 rows, got %d", i)
	}

	// Second run must not add anything.
	n, err = Seed(ctx, database)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 rows on second seed, got %d", n)
	}

	var count int
	database.QueryRow(`SELECT COUNT(*) FROM motors`).Scan(&count)
	if count != 3 {
		t.Errorf("expected 3 motors after second seed, got %d", count)
	}
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	database := NewTestDB(t)

	if _, err := database.Exec(`INSERT INTO motors (title, price) VALUES ('Vespa Sprint', 40000000)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := Seed(context.Background(), database)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no seeding into a non-empty catalog, got %d", n)
	}
}

func TestEnsureSchemaIdempotentOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motortrade.sqlite3")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	for i := 0; i < 2; i++ {
		if err := EnsureSchema(database); err != nil {
			t.Fatalf("EnsureSchema run %d: %v", i+1, err)
		}
	}
	if _, err := Seed(context.Background(), database); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema after seed: %v", err)
	}

	var count int
	database.QueryRow(`SELECT COUNT(*) FROM motors`).Scan(&count)
	if count != 3 {
		t.Errorf("schema re-run must not touch data, got %d motors", count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(
		`INSERT INTO purchases (motor_id, buyer_name, price_paid, purchased_at) VALUES (999, 'x', 1, '2024-01-01T00:00:00')`,
	)
	if err == nil {
		t.Error("expected foreign key violation for unknown motor")
	}
}
