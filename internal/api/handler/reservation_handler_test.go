package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

type stubReservationService struct {
	created  *domain.Reservation
	err      error
	gotInput ports.CreateReservationInput
}

func (s *stubReservationService) Create(_ context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	s.gotInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubReservationService) Confirm(_ context.Context, id string) (*domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubReservationService) Get(_ context.Context, id string) (*domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubReservationService) ListByMovie(_ context.Context, movieUID string) ([]domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.created == nil {
		return nil, nil
	}
	return []domain.Reservation{*s.created}, nil
}

func TestReservationHandler_Create(t *testing.T) {
	svc := &stubReservationService{created: &domain.Reservation{ID: "res-1", Status: domain.ReservationOpen, MovieUID: "m-1", Seats: 2}}
	h := NewReservationHandler(svc)

	c, rec := newMovieTestContext(http.MethodPost, "/movie/m-1/reservations", `{"seats":2}`)
	c.Request().Header.Set("Idempotency-Key", "key-1")
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if svc.gotInput.MovieID != "m-1" || svc.gotInput.Seats != 2 || svc.gotInput.IdempotencyKey != "key-1" {
		t.Fatalf("unexpected input: %+v", svc.gotInput)
	}

	var res domain.Reservation
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Status != domain.ReservationOpen {
		t.Fatalf("unexpected status: %s", res.Status)
	}
}

func TestReservationHandler_Create_PropagatesRejection(t *testing.T) {
	for _, want := range []error{domain.ErrMovieNotFound, domain.ErrMovieNotBookable, domain.ErrCatalogUnavailable} {
		svc := &stubReservationService{err: want}
		h := NewReservationHandler(svc)

		c, _ := newMovieTestContext(http.MethodPost, "/movie/m-1/reservations", `{}`)
		c.SetParamNames("id")
		c.SetParamValues("m-1")

		if err := h.Create(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestReservationHandler_Confirm(t *testing.T) {
	svc := &stubReservationService{created: &domain.Reservation{ID: "res-1", Status: domain.ReservationConfirmed}}
	h := NewReservationHandler(svc)

	c, rec := newMovieTestContext(http.MethodPost, "/reservations/res-1/confirm", "")
	c.SetParamNames("id")
	c.SetParamValues("res-1")

	if err := h.Confirm(c); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReservationHandler_Confirm_InvalidTransition(t *testing.T) {
	svc := &stubReservationService{err: domain.ErrInvalidTransition}
	h := NewReservationHandler(svc)

	c, _ := newMovieTestContext(http.MethodPost, "/reservations/res-1/confirm", "")
	c.SetParamNames("id")
	c.SetParamValues("res-1")

	if err := h.Confirm(c); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
