package services

import (
	"database/sql"
	"fmt"

	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/repositories"
	"fastbus/internal/utils"
)

// SeatService owns the seat inventory per schedule.
type SeatService struct {
	SeatRepo  repositories.SeatRepository
	DB        *sql.DB
	RequestID string
}

func (s SeatService) seats() repositories.SeatRepository {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepository{DB: s.DB}
}

// GenerateSeats bulk-creates the inventory for a freshly created schedule.
// Generation happens once; a schedule that already has seats is rejected.
func (s SeatService) GenerateSeats(scheduleID int64, totalSeats int) error {
	if scheduleID <= 0 {
		return domain.ValidationError{Field: "schedule_id", Msg: "must be positive"}
	}
	if totalSeats <= 0 {
		return domain.ValidationError{Field: "total_seats", Msg: "must be positive"}
	}

	existing, err := s.seats().CountBySchedule(scheduleID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if existing > 0 {
		return domain.ValidationError{Field: "schedule_id", Msg: "seats already generated"}
	}

	if err := s.seats().Generate(scheduleID, totalSeats); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "seat", "generate",
		fmt.Sprintf("schedule_id=%d total=%d", scheduleID, totalSeats))
	return nil
}

// ListSeats re-queries the seat map on every call, ordered by seat number.
func (s SeatService) ListSeats(scheduleID int64) ([]models.SeatView, error) {
	if scheduleID <= 0 {
		return nil, domain.ValidationError{Field: "schedule_id", Msg: "must be positive"}
	}
	return s.seats().ListBySchedule(scheduleID)
}
