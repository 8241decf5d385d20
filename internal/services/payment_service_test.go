package services

import (
	"database/sql"
	"testing"
	"time"

	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPaymentService(db *sql.DB) PaymentService {
	return PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
	}
}

func TestRecordPaymentStoresConfirmedPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "schedule_id", "booked_at", "total_cents"}).
			AddRow(7, 1, 1, time.Now(), 100000))
	mock.ExpectQuery("FROM booking_seats").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).AddRow("A1"))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(7), int64(100000), models.PaymentConfirmed).
		WillReturnResult(sqlmock.NewResult(3, 1))

	payment, err := newPaymentService(db).RecordPayment(7, 100000)
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	if payment.ID != 3 || payment.BookingID != 7 {
		t.Fatalf("unexpected payment: %+v", payment)
	}
	if payment.Status != models.PaymentConfirmed {
		t.Fatalf("expected confirmed status, got %q", payment.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err = newPaymentService(db).RecordPayment(999, 5000)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if _, err := newPaymentService(db).RecordPayment(7, 0); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := newPaymentService(db).RecordPayment(0, 100); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetPaymentDetailsReturnsLatestPayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	paidAt := time.Date(2025, 8, 9, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery("FROM payments").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount_cents", "status", "paid_at"}).
			AddRow(3, 7, 100000, models.PaymentConfirmed, paidAt))

	payment, err := newPaymentService(db).GetPaymentDetails(7)
	if err != nil {
		t.Fatalf("GetPaymentDetails returned error: %v", err)
	}
	if payment.ID != 3 || payment.AmountCents != 100000 {
		t.Fatalf("unexpected payment: %+v", payment)
	}
}

func TestGetPaymentDetailsMissingPaymentMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM payments").
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err = newPaymentService(db).GetPaymentDetails(999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	want := "Payment details for booking ID 999 not found"
	if err.Error() != want {
		t.Fatalf("expected message %q, got %q", want, err.Error())
	}
}
