package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	if id <= 0 {
		return models.Route{}, domain.ValidationError{Field: "route_id", Msg: "must be positive"}
	}

	var rt models.Route
	err := r.db().QueryRow(`SELECT id, origin, destination FROM routes WHERE id=?`, id).
		Scan(&rt.ID, &rt.Origin, &rt.Destination)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Route{}, domain.NotFoundError{Resource: fmt.Sprintf("route %d", id)}
	}
	if err != nil {
		return models.Route{}, err
	}
	return rt, nil
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.db().Query(`SELECT id, origin, destination FROM routes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Origin, &rt.Destination); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RouteRepository) Create(rt models.Route) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO routes (origin, destination) VALUES (?, ?)`,
		rt.Origin, rt.Destination)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
