package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationOpen      ReservationStatus = "open"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationExpired   ReservationStatus = "expired"
)

// validTransitions defines the allowed state machine transitions. Confirmed
// and expired are terminal: a reservation cannot be confirmed twice.
var validTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationOpen: {ReservationConfirmed, ReservationExpired},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a booking of seats for a movie seance. The movie itself is
// owned by the movie service; only its uid is referenced here. The seance uid
// is a fresh grouping reference generated at creation time.
type Reservation struct {
	ID             string            `json:"id"`
	Rank           int               `json:"rank"`
	Status         ReservationStatus `json:"status"`
	Seats          int               `json:"seats"`
	MovieUID       string            `json:"movieUid"`
	SeanceUID      string            `json:"sceance"`
	IdempotencyKey string            `json:"-"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
