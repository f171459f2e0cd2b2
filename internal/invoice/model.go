package invoice

import (
	"time"
)

const (
	StatusUnpaid    = "unpaid"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"

	defaultCurrency = "EUR"
)

type Invoice struct {
	ID          int        `db:"id" json:"id"`
	BookingID   int        `db:"booking_id" json:"booking_id"`
	UserID      int        `db:"user_id" json:"user_id"`
	AmountCents int64      `db:"amount_cents" json:"amount_cents"`
	Currency    string     `db:"currency" json:"currency"`
	Status      string     `db:"status" json:"status"`
	IssuedAt    time.Time  `db:"issued_at" json:"issued_at"`
	PaidAt      *time.Time `db:"paid_at" json:"paid_at,omitempty"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// IssueRequest describes the booking an invoice is raised for.
type IssueRequest struct {
	BookingID         int
	UserID            int
	PricePerHourCents int64
	Start             time.Time
	End               time.Time
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid cancelled"`
}

// AmountFor prices the interval per started minute, rounding the cents up.
func AmountFor(pricePerHourCents int64, start, end time.Time) int64 {
	if pricePerHourCents <= 0 || !end.After(start) {
		return 0
	}
	minutes := int64((end.Sub(start) + time.Minute - 1) / time.Minute)
	return (pricePerHourCents*minutes + 59) / 60
}
