package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/motortrade/internal/model"
)

// CreateMotor inserts a new listing and returns the stored row. image may be
// nil when the listing has no photo.
func CreateMotor(ctx context.Context, db *sql.DB, in model.MotorInput, image []byte, mime string) (*model.Motor, error) {
	var imageMime sql.NullString
	if len(image) > 0 {
		imageMime = sql.NullString{String: mime, Valid: true}
	} else {
		image = nil
	}

	var year sql.NullInt64
	if in.Year != nil {
		year = sql.NullInt64{Int64: int64(*in.Year), Valid: true}
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO motors (title, brand, year, price, description, image, image_mime)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Brand, year, in.Price, in.Description, image, imageMime,
	)
	if err != nil {
		return nil, fmt.Errorf("creating motor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting motor id: %w", err)
	}

	return GetMotor(ctx, db, id)
}

// GetMotor returns a motor by ID, or nil if it doesn't exist.
func GetMotor(ctx context.Context, db *sql.DB, id int64) (*model.Motor, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, title, brand, year, price, description, image_mime
		 FROM motors WHERE id = ?`, id,
	)
	m, err := scanMotor(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting motor: %w", err)
	}
	return m, nil
}

// ListMotors returns the whole catalog, newest listing first.
func ListMotors(ctx context.Context, db *sql.DB) ([]model.Motor, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, brand, year, price, description, image_mime
		 FROM motors ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing motors: %w", err)
	}
	defer rows.Close()

	var motors []model.Motor
	for rows.Next() {
		m, err := scanMotor(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning motor: %w", err)
		}
		motors = append(motors, *m)
	}
	return motors, rows.Err()
}

// CountMotors returns the number of listings in the catalog.
func CountMotors(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM motors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting motors: %w", err)
	}
	return n, nil
}

// GetMotorImage returns a motor's photo and its MIME type. Both are empty when
// the motor has no photo or doesn't exist.
func GetMotorImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM motors WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting motor image: %w", err)
	}
	return image, mime.String, nil
}

func scanMotor(scan func(dest ...any) error) (*model.Motor, error) {
	m := &model.Motor{}
	var brand, description, imageMime sql.NullString
	var year sql.NullInt64
	var price sql.NullFloat64
	if err := scan(&m.ID, &m.Title, &brand, &year, &price, &description, &imageMime); err != nil {
		return nil, err
	}
	m.Brand = brand.String
	if year.Valid {
		y := int(year.Int64)
		m.Year = &y
	}
	m.Price = price.Float64
	m.Description = description.String
	m.ImageMime = imageMime.String
	return m, nil
}
