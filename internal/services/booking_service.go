package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "fastbus/internal/config"
	intdb "fastbus/internal/db"
	"fastbus/internal/domain"
	"fastbus/internal/domain/models"
	"fastbus/internal/repositories"
	"fastbus/internal/utils"
)

// BookingService reconciles concurrent seat claims and keeps booking,
// seat and payment state consistent. The claim-then-persist sequence for
// one booking runs as a single transaction: either the seats flip booked
// and a booking row referencing them exists, or neither does.
type BookingService struct {
	UserRepo     repositories.UserRepository
	ScheduleRepo repositories.ScheduleRepository
	SeatRepo     repositories.SeatRepository
	BookingRepo  repositories.BookingRepository
	DB           *sql.DB
	RequestID    string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s BookingService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.db()}
}

func (s BookingService) seats() repositories.SeatRepository {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// BookTickets claims the requested seats and creates the booking.
// Failure modes: ValidationError for an empty seat set, NotFoundError for
// an unknown user, schedule or seat number, SeatAlreadyBookedError when
// another booking holds any requested seat. Overlapping concurrent
// attempts on the same seats resolve to exactly one winner; the loser
// gets SeatAlreadyBookedError and no state change.
func (s BookingService) BookTickets(userID, scheduleID int64, seatNumbers []string) (models.BookingSummary, error) {
	if userID <= 0 {
		return models.BookingSummary{}, domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}
	if scheduleID <= 0 {
		return models.BookingSummary{}, domain.ValidationError{Field: "schedule_id", Msg: "must be positive"}
	}
	seatSet := utils.NormalizeSeats(seatNumbers)
	if len(seatSet) == 0 {
		return models.BookingSummary{}, domain.ValidationError{Field: "seat_numbers", Msg: "at least one seat required"}
	}

	if _, err := s.users().GetByID(userID); err != nil {
		return models.BookingSummary{}, err
	}

	var summary models.BookingSummary
	err := intdb.WithTx(s.db(), func(tx *sql.Tx) error {
		detail, err := s.schedules().GetDetail(tx, scheduleID)
		if err != nil {
			return err
		}
		if err := s.seats().Claim(tx, scheduleID, seatSet); err != nil {
			return err
		}
		total := detail.FareCents * int64(len(seatSet))
		bookingID, err := s.bookings().Insert(tx, models.Booking{
			UserID:      userID,
			ScheduleID:  scheduleID,
			SeatNumbers: seatSet,
			TotalCents:  total,
		})
		if err != nil {
			return err
		}
		summary = models.BookingSummary{
			BookingID:   bookingID,
			BusName:     detail.BusName,
			Route:       detail.RouteDescription(),
			SeatNumbers: seatSet,
			TotalCents:  total,
			Total:       utils.FormatCents(total),
		}
		return nil
	})
	if err != nil {
		return models.BookingSummary{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "book",
		fmt.Sprintf("booking_id=%d schedule_id=%d seats=%s", summary.BookingID, scheduleID, strings.Join(seatSet, ",")))
	return summary, nil
}

// GetBookingSummary re-derives the summary from persisted state.
func (s BookingService) GetBookingSummary(bookingID int64) (models.BookingSummary, error) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.BookingSummary{}, err
	}
	detail, err := s.schedules().GetDetail(nil, booking.ScheduleID)
	if err != nil {
		return models.BookingSummary{}, err
	}
	return models.BookingSummary{
		BookingID:   booking.ID,
		BusName:     detail.BusName,
		Route:       detail.RouteDescription(),
		SeatNumbers: booking.SeatNumbers,
		TotalCents:  booking.TotalCents,
		Total:       utils.FormatCents(booking.TotalCents),
	}, nil
}

// GetBookingsByOperator lists every booking taken on the operator's buses,
// in stable booking-id order.
func (s BookingService) GetBookingsByOperator(operatorID int64) ([]models.Booking, error) {
	if operatorID <= 0 {
		return nil, domain.ValidationError{Field: "operator_id", Msg: "must be positive"}
	}
	return s.bookings().ListByOperator(operatorID)
}
