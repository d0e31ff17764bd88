package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// ReservationHandler handles the booking workflow endpoints.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type createReservationRequest struct {
	Seats int `json:"seats" validate:"omitempty,gte=1"`
}

// Create handles POST /movie/:id/reservations. The movie is looked up in the
// remote catalog before any local write; a business rejection or a missing
// movie leaves no reservation behind.
//
// @Summary      Create a reservation for a movie
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string                    true   "Movie id"
// @Param        Idempotency-Key  header    string                    false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createReservationRequest  false  "Reservation details"
// @Success      201              {object}  domain.Reservation
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Failure      503              {object}  map[string]string
// @Router       /movie/{id}/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reservation, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		MovieID:        c.Param("id"),
		Seats:          req.Seats,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reservation)
}

// Confirm handles POST /reservations/:id/confirm. Only open reservations can
// be confirmed; a second confirmation is rejected.
//
// @Summary      Confirm a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c echo.Context) error {
	reservation, err := h.service.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservation)
}

// ListByMovie handles GET /movie/:id/reservations.
//
// @Summary      List reservations for a movie
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Movie id"
// @Success      200       {array}   domain.Reservation
// @Router       /movie/{id}/reservations [get]
func (h *ReservationHandler) ListByMovie(c echo.Context) error {
	reservations, err := h.service.ListByMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}

// Get handles GET /reservations/:id.
//
// @Summary      Get a reservation by id
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  map[string]string
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	reservation, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservation)
}
