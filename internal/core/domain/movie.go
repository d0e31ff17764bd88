package domain

import "time"

// Movie is the catalog entity consumed read-only by the reservation workflow.
// HasReservationsAvailable is the business flag that gates booking.
type Movie struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	Description              string    `json:"description"`
	Rate                     int       `json:"rate"`
	Duration                 int       `json:"duration"`
	HasReservationsAvailable bool      `json:"hasReservationsAvailable"`
	Categories               []string  `json:"categories,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// ValidMovie checks the catalog invariants on create/update.
func ValidMovie(m *Movie) bool {
	if m.Name == "" || len(m.Name) > 128 {
		return false
	}
	if m.Description == "" || len(m.Description) > 4096 {
		return false
	}
	if m.Rate < 1 || m.Rate > 5 {
		return false
	}
	if m.Duration < 1 || m.Duration > 240 {
		return false
	}
	return true
}
