package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BusRepository) GetByID(id int64) (models.Bus, error) {
	if id <= 0 {
		return models.Bus{}, domain.ValidationError{Field: "bus_id", Msg: "must be positive"}
	}

	var b models.Bus
	err := r.db().QueryRow(`
		SELECT id, operator_id, bus_name, bus_number, COALESCE(bus_type,''), seat_count
		FROM buses
		WHERE id=?`, id).Scan(
		&b.ID, &b.OperatorID, &b.BusName, &b.BusNumber, &b.BusType, &b.SeatCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bus{}, domain.NotFoundError{Resource: fmt.Sprintf("bus %d", id)}
	}
	if err != nil {
		return models.Bus{}, err
	}
	return b, nil
}

func (r BusRepository) List() ([]models.Bus, error) {
	return r.scanList(`
		SELECT id, operator_id, bus_name, bus_number, COALESCE(bus_type,''), seat_count
		FROM buses ORDER BY id`)
}

func (r BusRepository) ListByOperator(operatorID int64) ([]models.Bus, error) {
	return r.scanList(`
		SELECT id, operator_id, bus_name, bus_number, COALESCE(bus_type,''), seat_count
		FROM buses WHERE operator_id=? ORDER BY id`, operatorID)
}

func (r BusRepository) scanList(query string, args ...any) ([]models.Bus, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.OperatorID, &b.BusName, &b.BusNumber, &b.BusType, &b.SeatCount); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) Create(b models.Bus) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO buses (operator_id, bus_name, bus_number, bus_type, seat_count)
		VALUES (?, ?, ?, ?, ?)`,
		b.OperatorID, b.BusName, b.BusNumber, b.BusType, b.SeatCount,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BusRepository) Update(b models.Bus) error {
	_, err := r.db().Exec(`
		UPDATE buses SET bus_name=?, bus_number=?, bus_type=?, seat_count=?
		WHERE id=? AND operator_id=?`,
		b.BusName, b.BusNumber, b.BusType, b.SeatCount, b.ID, b.OperatorID,
	)
	return err
}

func (r BusRepository) Delete(id, operatorID int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM buses WHERE id=? AND operator_id=?`, id, operatorID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
