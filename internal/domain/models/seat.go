package models

// Seat is one physical seat on one schedule. SeatNumber is unique within
// the schedule; IsBooked flips only inside a successful claim.
type Seat struct {
	ID         int64  `json:"id"`
	ScheduleID int64  `json:"schedule_id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

// SeatView is the read-path shape for seat maps.
type SeatView struct {
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}
