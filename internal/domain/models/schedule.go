package models

import "time"

// Schedule is one trip of one bus along one route. FareCents is the per-seat
// price in minor currency units; money never travels as float.
type Schedule struct {
	ID            int64     `json:"id"`
	BusID         int64     `json:"bus_id"`
	RouteID       int64     `json:"route_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	FareCents     int64     `json:"fare_cents"`
}

// ScheduleDetail joins the bus and route rows a schedule references.
type ScheduleDetail struct {
	Schedule
	BusName     string `json:"bus_name"`
	BusType     string `json:"bus_type"`
	OperatorID  int64  `json:"operator_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// RouteDescription renders "Origin to Destination" for summaries.
func (d ScheduleDetail) RouteDescription() string {
	return Route{Origin: d.Origin, Destination: d.Destination}.Description()
}
