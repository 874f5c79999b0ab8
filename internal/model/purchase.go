package model

import "time"

// TimestampLayout is the stored form of purchase timestamps: ISO 8601, UTC,
// second precision. Being fixed-width, string order equals time order.
const TimestampLayout = "2006-01-02T15:04:05"

// Purchase records one buyer acquiring one motor.
type Purchase struct {
	ID          int64     `json:"id"`
	MotorID     int64     `json:"motor_id"`
	BuyerName   string    `json:"buyer_name"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	PricePaid   float64   `json:"price_paid"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// PurchaseRecord is a purchase joined with its motor's title, as shown in the
// purchase report.
type PurchaseRecord struct {
	ID          int64     `json:"id"`
	MotorTitle  string    `json:"motor_title"`
	BuyerName   string    `json:"buyer_name"`
	PricePaid   float64   `json:"price_paid"`
	PurchasedAt time.Time `json:"purchased_at"`
}
