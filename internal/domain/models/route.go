package models

import "fmt"

type Route struct {
	ID          int64  `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Description renders the display form used on tickets and summaries.
func (r Route) Description() string {
	return fmt.Sprintf("%s to %s", r.Origin, r.Destination)
}
