package services

import (
	"database/sql"
	"fmt"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/repositories"
	"fastbus/internal/utils"
)

// PaymentService records payments against bookings and looks them up by
// booking id. It does not enforce one payment per booking; the latest row
// wins on lookup.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s PaymentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s PaymentService) payments() repositories.PaymentRepository {
	if s.PaymentRepo.DB != nil {
		return s.PaymentRepo
	}
	return repositories.PaymentRepository{DB: s.db()}
}

func (s PaymentService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// RecordPayment creates a payment row in the recorded (Confirmed) state.
func (s PaymentService) RecordPayment(bookingID, amountCents int64) (models.Payment, error) {
	if bookingID <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	if amountCents <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount_cents", Msg: "must be positive"}
	}

	if _, err := s.bookings().GetByID(bookingID); err != nil {
		return models.Payment{}, err
	}

	p := models.Payment{
		BookingID:   bookingID,
		AmountCents: amountCents,
		Status:      models.PaymentConfirmed,
		PaidAt:      utils.NowUTC(),
	}
	id, err := s.payments().Insert(p)
	if err != nil {
		return models.Payment{}, domain.InternalError{Err: err}
	}
	p.ID = id

	utils.LogEvent(s.RequestID, "payment", "record",
		fmt.Sprintf("payment_id=%d booking_id=%d amount=%s", id, bookingID, utils.FormatCents(amountCents)))
	return p, nil
}

// GetPaymentDetails returns the payment recorded for the booking.
func (s PaymentService) GetPaymentDetails(bookingID int64) (models.Payment, error) {
	if bookingID <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	return s.payments().GetByBooking(bookingID)
}
