package models

// SearchResult is one searchable trip. Departure/arrival carry a short
// date-time display string; downstream must not parse them.
type SearchResult struct {
	ScheduleID     int64  `json:"schedule_id"`
	BusName        string `json:"bus_name"`
	BusType        string `json:"bus_type"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	FareCents      int64  `json:"fare_cents"`
	AvailableSeats int    `json:"available_seats"`
}
