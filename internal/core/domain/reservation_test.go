package domain

import "testing"

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationOpen, ReservationConfirmed, true},
		{ReservationOpen, ReservationExpired, true},
		{ReservationConfirmed, ReservationConfirmed, false},
		{ReservationConfirmed, ReservationExpired, false},
		{ReservationConfirmed, ReservationOpen, false},
		{ReservationExpired, ReservationConfirmed, false},
		{ReservationExpired, ReservationOpen, false},
		{ReservationOpen, ReservationOpen, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
