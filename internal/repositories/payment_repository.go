package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PaymentRepository) Insert(p models.Payment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payments (booking_id, amount_cents, status, paid_at)
		VALUES (?, ?, ?, NOW())`,
		p.BookingID, p.AmountCents, p.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByBooking returns the most recent payment for a booking. The ledger
// allows more than one payment row per booking; the latest wins on lookup.
func (r PaymentRepository) GetByBooking(bookingID int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT id, booking_id, amount_cents, status, paid_at
		FROM payments
		WHERE booking_id=?
		ORDER BY id DESC LIMIT 1`, bookingID).Scan(
		&p.ID, &p.BookingID, &p.AmountCents, &p.Status, &p.PaidAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{
			Resource: fmt.Sprintf("Payment details for booking ID %d", bookingID),
		}
	}
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}
