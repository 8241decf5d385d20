package models

import "time"

// Payment statuses.
const (
	PaymentPending   = "Pending"
	PaymentConfirmed = "Confirmed"
	PaymentFailed    = "Failed"
)

// Payment records money received against a booking. Recording defaults the
// status to Confirmed; the ledger does not enforce one payment per booking.
type Payment struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paid_at"`
}
