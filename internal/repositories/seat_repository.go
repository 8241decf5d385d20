package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type SeatRepository struct {
	DB *sql.DB
}

func (r SeatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SeatRepository) CountBySchedule(scheduleID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM seats WHERE schedule_id=?`, scheduleID).Scan(&n)
	return n, err
}

// Generate bulk-inserts sequential seat labels S1..Sn, all free.
func (r SeatRepository) Generate(scheduleID int64, totalSeats int) error {
	values := make([]string, 0, totalSeats)
	args := make([]any, 0, totalSeats*2)
	for i := 1; i <= totalSeats; i++ {
		values = append(values, "(?,?,0)")
		args = append(args, scheduleID, fmt.Sprintf("S%d", i))
	}
	_, err := r.db().Exec(
		`INSERT INTO seats (schedule_id, seat_number, is_booked) VALUES `+strings.Join(values, ","),
		args...,
	)
	return err
}

func (r SeatRepository) ListBySchedule(scheduleID int64) ([]models.SeatView, error) {
	rows, err := r.db().Query(`
		SELECT seat_number, is_booked
		FROM seats
		WHERE schedule_id=?
		ORDER BY seat_number`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SeatView{}
	for rows.Next() {
		var v models.SeatView
		if err := rows.Scan(&v.SeatNumber, &v.IsBooked); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Claim marks every requested seat booked as one atomic unit, inside the
// caller's transaction. The rows are locked first, then flipped with a
// guard on is_booked so a row changed underneath the lock still loses.
// No partial claim survives: any failure leaves the transaction to roll
// back untouched seats.
func (r SeatRepository) Claim(q Queryer, scheduleID int64, seatNumbers []string) error {
	query := fmt.Sprintf(`
		SELECT id, seat_number, is_booked
		FROM seats
		WHERE schedule_id=? AND seat_number IN (%s)
		FOR UPDATE`, placeholders(len(seatNumbers)))

	args := append([]any{scheduleID}, toArgs(seatNumbers)...)
	rows, err := q.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	found := make(map[string]int64, len(seatNumbers))
	booked := []string{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.SeatNumber, &s.IsBooked); err != nil {
			return err
		}
		found[s.SeatNumber] = s.ID
		if s.IsBooked {
			booked = append(booked, s.SeatNumber)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	missing := []string{}
	for _, n := range seatNumbers {
		if _, ok := found[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return domain.NotFoundError{
			Resource: fmt.Sprintf("seat(s) %s on schedule %d", strings.Join(missing, ", "), scheduleID),
		}
	}
	if len(booked) > 0 {
		return domain.SeatAlreadyBookedError{ScheduleID: scheduleID, SeatNumbers: booked}
	}

	ids := make([]any, 0, len(seatNumbers))
	for _, n := range seatNumbers {
		ids = append(ids, found[n])
	}
	res, err := q.Exec(fmt.Sprintf(
		`UPDATE seats SET is_booked=1 WHERE id IN (%s) AND is_booked=0`,
		placeholders(len(ids))), ids...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(seatNumbers)) {
		return domain.SeatAlreadyBookedError{ScheduleID: scheduleID, SeatNumbers: seatNumbers}
	}
	return nil
}
