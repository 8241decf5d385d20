package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert persists a booking and its claimed seat numbers against the
// caller's Queryer, so it shares the claim transaction.
func (r BookingRepository) Insert(q Queryer, b models.Booking) (int64, error) {
	if q == nil {
		q = r.db()
	}
	res, err := q.Exec(`
		INSERT INTO bookings (user_id, schedule_id, booked_at, total_cents)
		VALUES (?, ?, NOW(), ?)`,
		b.UserID, b.ScheduleID, b.TotalCents,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	values := make([]string, 0, len(b.SeatNumbers))
	args := make([]any, 0, len(b.SeatNumbers)*2)
	for _, n := range b.SeatNumbers {
		values = append(values, "(?,?)")
		args = append(args, id, n)
	}
	if _, err := q.Exec(
		`INSERT INTO booking_seats (booking_id, seat_number) VALUES `+strings.Join(values, ","),
		args...,
	); err != nil {
		return 0, err
	}
	return id, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}

	var b models.Booking
	err := r.db().QueryRow(`
		SELECT id, user_id, schedule_id, booked_at, total_cents
		FROM bookings
		WHERE id=?`, id).Scan(&b.ID, &b.UserID, &b.ScheduleID, &b.BookedAt, &b.TotalCents)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: fmt.Sprintf("booking %d", id)}
	}
	if err != nil {
		return models.Booking{}, err
	}

	seats, err := r.seatNumbers(id)
	if err != nil {
		return models.Booking{}, err
	}
	b.SeatNumbers = seats
	return b, nil
}

func (r BookingRepository) seatNumbers(bookingID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT seat_number FROM booking_seats
		WHERE booking_id=? ORDER BY seat_number`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// ListByOperator returns every booking whose schedule's bus belongs to the
// operator, with seat numbers aggregated per booking, iterated by booking id.
func (r BookingRepository) ListByOperator(operatorID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT bk.id, bk.user_id, bk.schedule_id, bk.booked_at, bk.total_cents,
		       COALESCE(GROUP_CONCAT(bs.seat_number ORDER BY bs.seat_number SEPARATOR ','), '')
		FROM bookings bk
		JOIN schedules sc ON sc.id = bk.schedule_id
		JOIN buses b ON b.id = sc.bus_id
		LEFT JOIN booking_seats bs ON bs.booking_id = bk.id
		WHERE b.operator_id=?
		GROUP BY bk.id, bk.user_id, bk.schedule_id, bk.booked_at, bk.total_cents
		ORDER BY bk.id`, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var seats string
		if err := rows.Scan(&b.ID, &b.UserID, &b.ScheduleID, &b.BookedAt, &b.TotalCents, &seats); err != nil {
			return nil, err
		}
		if seats != "" {
			b.SeatNumbers = strings.Split(seats, ",")
		} else {
			b.SeatNumbers = []string{}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
