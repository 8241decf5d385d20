package models

// Bus belongs to one operator account. SeatCount fixes the seat inventory
// size for every schedule created on this bus.
type Bus struct {
	ID         int64  `json:"id"`
	OperatorID int64  `json:"operator_id"`
	BusName    string `json:"bus_name"`
	BusNumber  string `json:"bus_number"`
	BusType    string `json:"bus_type"`
	SeatCount  int    `json:"seat_count"`
}
