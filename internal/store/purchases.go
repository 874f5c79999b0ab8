package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erazemk/motortrade/internal/model"
)

// CreatePurchase records a purchase. PurchasedAt is stored in UTC at second
// precision; the motor must exist (enforced by the foreign key).
func CreatePurchase(ctx context.Context, db *sql.DB, p model.Purchase) (*model.Purchase, error) {
	purchasedAt := p.PurchasedAt.UTC().Truncate(time.Second)

	result, err := db.ExecContext(ctx,
		`INSERT INTO purchases (motor_id, buyer_name, phone, address, price_paid, purchased_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.MotorID, p.BuyerName, p.Phone, p.Address, p.PricePaid,
		purchasedAt.Format(model.TimestampLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("creating purchase: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting purchase id: %w", err)
	}

	p.ID = id
	p.PurchasedAt = purchasedAt
	return &p, nil
}

// ListPurchases returns every purchase with its motor's title, most recent
// first. Purchases made within the same second are ordered by ID.
func ListPurchases(ctx context.Context, db *sql.DB) ([]model.PurchaseRecord, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT p.id, m.title, p.buyer_name, p.price_paid, p.purchased_at
		 FROM purchases p
		 JOIN motors m ON m.id = p.motor_id
		 ORDER BY p.purchased_at DESC, p.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var records []model.PurchaseRecord
	for rows.Next() {
		var rec model.PurchaseRecord
		var buyer, purchasedAt sql.NullString
		var pricePaid sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.MotorTitle, &buyer, &pricePaid, &purchasedAt); err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}
		rec.BuyerName = buyer.String
		rec.PricePaid = pricePaid.Float64
		if purchasedAt.Valid {
			t, err := time.Parse(model.TimestampLayout, purchasedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing purchase %d timestamp: %w", rec.ID, err)
			}
			rec.PurchasedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountPurchases returns the number of recorded purchases.
func CountPurchases(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting purchases: %w", err)
	}
	return n, nil
}
