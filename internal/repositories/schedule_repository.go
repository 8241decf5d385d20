package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ScheduleRepository) Create(s models.Schedule) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO schedules (bus_id, route_id, departure_time, arrival_time, fare_cents)
		VALUES (?, ?, ?, ?, ?)`,
		s.BusID, s.RouteID, s.DepartureTime, s.ArrivalTime, s.FareCents,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const scheduleDetailSelect = `
	SELECT sc.id, sc.bus_id, sc.route_id, sc.departure_time, sc.arrival_time, sc.fare_cents,
	       b.bus_name, COALESCE(b.bus_type,''), b.operator_id,
	       r.origin, r.destination
	FROM schedules sc
	JOIN buses b ON b.id = sc.bus_id
	JOIN routes r ON r.id = sc.route_id`

// GetDetail resolves a schedule together with its bus and route rows.
// Runs against the caller's Queryer so booking can resolve inside its
// transaction.
func (r ScheduleRepository) GetDetail(q Queryer, id int64) (models.ScheduleDetail, error) {
	if q == nil {
		q = r.db()
	}
	var d models.ScheduleDetail
	err := q.QueryRow(scheduleDetailSelect+` WHERE sc.id=?`, id).Scan(
		&d.ID, &d.BusID, &d.RouteID, &d.DepartureTime, &d.ArrivalTime, &d.FareCents,
		&d.BusName, &d.BusType, &d.OperatorID,
		&d.Origin, &d.Destination,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScheduleDetail{}, domain.NotFoundError{Resource: fmt.Sprintf("schedule %d", id)}
	}
	if err != nil {
		return models.ScheduleDetail{}, err
	}
	return d, nil
}

func (r ScheduleRepository) ListByOperator(operatorID int64) ([]models.ScheduleDetail, error) {
	rows, err := r.db().Query(scheduleDetailSelect+` WHERE b.operator_id=? ORDER BY sc.id`, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ScheduleDetail{}
	for rows.Next() {
		var d models.ScheduleDetail
		if err := rows.Scan(
			&d.ID, &d.BusID, &d.RouteID, &d.DepartureTime, &d.ArrivalTime, &d.FareCents,
			&d.BusName, &d.BusType, &d.OperatorID,
			&d.Origin, &d.Destination,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r ScheduleRepository) Update(s models.Schedule) error {
	_, err := r.db().Exec(`
		UPDATE schedules SET route_id=?, departure_time=?, arrival_time=?, fare_cents=?
		WHERE id=?`,
		s.RouteID, s.DepartureTime, s.ArrivalTime, s.FareCents, s.ID,
	)
	return err
}

func (r ScheduleRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM schedules WHERE id=?`, id)
	return err
}
