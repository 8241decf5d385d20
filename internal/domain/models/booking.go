package models

import "time"

// Booking is created only through a successful seat claim and is immutable
// afterwards. TotalCents = fare × seat count at booking time.
type Booking struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ScheduleID  int64     `json:"schedule_id"`
	BookedAt    time.Time `json:"booked_at"`
	SeatNumbers []string  `json:"seat_numbers"`
	TotalCents  int64     `json:"total_cents"`
}

// BookingSummary is the presentation shape returned after booking and from
// summary lookups.
type BookingSummary struct {
	BookingID   int64    `json:"booking_id"`
	BusName     string   `json:"bus_name"`
	Route       string   `json:"route"`
	SeatNumbers []string `json:"seat_numbers"`
	TotalCents  int64    `json:"total_cents"`
	Total       string   `json:"total"`
}
