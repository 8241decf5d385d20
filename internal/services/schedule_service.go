package services

import (
	"database/sql"
	"fmt"
	"time"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/repositories"
	"fastbus/internal/utils"
)

// ScheduleInput carries the mutable schedule fields for create and update.
type ScheduleInput struct {
	BusID         int64     `json:"bus_id"`
	RouteID       int64     `json:"route_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	FareCents     int64     `json:"fare_cents"`
}

// OperatorSchedule is the operator-facing listing row.
type OperatorSchedule struct {
	ScheduleID    int64  `json:"schedule_id"`
	BusName       string `json:"bus_name"`
	Route         string `json:"route"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	FareCents     int64  `json:"fare_cents"`
	Fare          string `json:"fare"`
}

// ScheduleService manages the schedule catalog. Create and mutate paths
// re-check bus ownership against the calling operator.
type ScheduleService struct {
	ScheduleRepo repositories.ScheduleRepository
	BusRepo      repositories.BusRepository
	RouteRepo    repositories.RouteRepository
	SeatSvc      SeatService
	DB           *sql.DB
	RequestID    string
}

func (s ScheduleService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ScheduleService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.db()}
}

func (s ScheduleService) buses() repositories.BusRepository {
	if s.BusRepo.DB != nil {
		return s.BusRepo
	}
	return repositories.BusRepository{DB: s.db()}
}

func (s ScheduleService) routes() repositories.RouteRepository {
	if s.RouteRepo.DB != nil {
		return s.RouteRepo
	}
	return repositories.RouteRepository{DB: s.db()}
}

func (s ScheduleService) seatSvc() SeatService {
	if s.SeatSvc.SeatRepo.DB != nil || s.SeatSvc.DB != nil {
		return s.SeatSvc
	}
	return SeatService{DB: s.db(), RequestID: s.RequestID}
}

func validateScheduleInput(in ScheduleInput) error {
	if in.FareCents < 0 {
		return domain.ValidationError{Field: "fare_cents", Msg: "must not be negative"}
	}
	if !in.DepartureTime.Before(in.ArrivalTime) {
		return domain.ValidationError{Field: "departure_time", Msg: "must be before arrival time"}
	}
	return nil
}

// CreateSchedule persists the schedule and generates its seat inventory
// sized to the bus's configured capacity. The bus must belong to the
// calling operator.
func (s ScheduleService) CreateSchedule(operatorID int64, in ScheduleInput) (models.Schedule, error) {
	if err := validateScheduleInput(in); err != nil {
		return models.Schedule{}, err
	}

	bus, err := s.buses().GetByID(in.BusID)
	if err != nil {
		return models.Schedule{}, err
	}
	if bus.OperatorID != operatorID {
		return models.Schedule{}, domain.UnauthorizedError{
			Msg: fmt.Sprintf("bus %d is not owned by operator %d", in.BusID, operatorID),
		}
	}
	if _, err := s.routes().GetByID(in.RouteID); err != nil {
		return models.Schedule{}, err
	}

	sched := models.Schedule{
		BusID:         in.BusID,
		RouteID:       in.RouteID,
		DepartureTime: in.DepartureTime,
		ArrivalTime:   in.ArrivalTime,
		FareCents:     in.FareCents,
	}
	id, err := s.schedules().Create(sched)
	if err != nil {
		return models.Schedule{}, domain.InternalError{Err: err}
	}
	sched.ID = id

	if err := s.seatSvc().GenerateSeats(id, bus.SeatCount); err != nil {
		return models.Schedule{}, err
	}

	utils.LogEvent(s.RequestID, "schedule", "create",
		fmt.Sprintf("schedule_id=%d bus_id=%d seats=%d", id, bus.ID, bus.SeatCount))
	return sched, nil
}

// UpdateSchedule applies the input when the schedule exists and its bus
// belongs to the operator. Ownership failure and absence both report
// false without an error; this soft contract is deliberate and distinct
// from the booking engine's hard failures.
func (s ScheduleService) UpdateSchedule(scheduleID int64, in ScheduleInput, operatorID int64) (bool, error) {
	detail, err := s.schedules().GetDetail(nil, scheduleID)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if detail.OperatorID != operatorID {
		return false, nil
	}
	if err := validateScheduleInput(in); err != nil {
		return false, err
	}

	routeID := in.RouteID
	if routeID == 0 {
		routeID = detail.RouteID
	}
	err = s.schedules().Update(models.Schedule{
		ID:            scheduleID,
		RouteID:       routeID,
		DepartureTime: in.DepartureTime,
		ArrivalTime:   in.ArrivalTime,
		FareCents:     in.FareCents,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteSchedule removes the schedule (seats cascade) under the same soft
// ownership contract as UpdateSchedule.
func (s ScheduleService) DeleteSchedule(scheduleID, operatorID int64) (bool, error) {
	detail, err := s.schedules().GetDetail(nil, scheduleID)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if detail.OperatorID != operatorID {
		return false, nil
	}
	if err := s.schedules().Delete(scheduleID); err != nil {
		return false, err
	}
	return true, nil
}

// GetSchedulesByOperator lists the operator's schedules in display form.
func (s ScheduleService) GetSchedulesByOperator(operatorID int64) ([]OperatorSchedule, error) {
	if operatorID <= 0 {
		return nil, domain.ValidationError{Field: "operator_id", Msg: "must be positive"}
	}
	details, err := s.schedules().ListByOperator(operatorID)
	if err != nil {
		return nil, err
	}
	out := make([]OperatorSchedule, 0, len(details))
	for _, d := range details {
		out = append(out, OperatorSchedule{
			ScheduleID:    d.ID,
			BusName:       d.BusName,
			Route:         d.RouteDescription(),
			DepartureTime: utils.FormatShortDateTime(d.DepartureTime),
			ArrivalTime:   utils.FormatShortDateTime(d.ArrivalTime),
			FareCents:     d.FareCents,
			Fare:          utils.FormatCents(d.FareCents),
		})
	}
	return out, nil
}
