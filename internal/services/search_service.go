package services

import (
	"database/sql"
	"strings"
	"time"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/utils"
)

// SearchService is the read path over schedules and seat inventory.
type SearchService struct {
	DB        *sql.DB
	RequestID string
}

func (s SearchService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Search matches schedules by exact origin/destination and the travel
// date's day, in stable schedule-id order. Available seats counts rows
// still free at query time. No matches is an empty slice, not an error.
func (s SearchService) Search(origin, destination string, travelDate time.Time) ([]models.SearchResult, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" {
		return nil, domain.ValidationError{Field: "origin", Msg: "required"}
	}
	if destination == "" {
		return nil, domain.ValidationError{Field: "destination", Msg: "required"}
	}

	rows, err := s.db().Query(`
		SELECT sc.id, b.bus_name, COALESCE(b.bus_type,''),
		       sc.departure_time, sc.arrival_time, sc.fare_cents,
		       (SELECT COUNT(*) FROM seats st WHERE st.schedule_id = sc.id AND st.is_booked = 0)
		FROM schedules sc
		JOIN buses b ON b.id = sc.bus_id
		JOIN routes r ON r.id = sc.route_id
		WHERE r.origin = ? AND r.destination = ? AND DATE(sc.departure_time) = ?
		ORDER BY sc.id`,
		origin, destination, utils.FormatDate(travelDate))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SearchResult{}
	for rows.Next() {
		var (
			res      models.SearchResult
			dep, arr time.Time
		)
		if err := rows.Scan(&res.ScheduleID, &res.BusName, &res.BusType,
			&dep, &arr, &res.FareCents, &res.AvailableSeats); err != nil {
			return nil, err
		}
		res.DepartureTime = utils.FormatShortDateTime(dep)
		res.ArrivalTime = utils.FormatShortDateTime(arr)
		out = append(out, res)
	}
	return out, rows.Err()
}
