package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// CinemaHandler handles the plain persistence endpoints for cinemas, rooms,
// and seances. There are no business rules here beyond store/retrieve, so the
// handlers sit directly on the repositories.
type CinemaHandler struct {
	cinemas ports.CinemaRepository
	rooms   ports.RoomRepository
	seances ports.SeanceRepository
}

func NewCinemaHandler(cinemas ports.CinemaRepository, rooms ports.RoomRepository, seances ports.SeanceRepository) *CinemaHandler {
	return &CinemaHandler{cinemas: cinemas, rooms: rooms, seances: seances}
}

type cinemaRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type roomRequest struct {
	Name  string `json:"name"  validate:"required,max=128"`
	Seats int    `json:"seats" validate:"required,gte=1"`
}

type seanceRequest struct {
	Movie string    `json:"movie" validate:"required"`
	Date  time.Time `json:"date"  validate:"required"`
}

// --- Cinemas ---

func (h *CinemaHandler) CreateCinema(c echo.Context) error {
	var req cinemaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.cinemas.Create(c.Request().Context(), &domain.Cinema{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CinemaHandler) ListCinemas(c echo.Context) error {
	cinemas, err := h.cinemas.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cinemas)
}

func (h *CinemaHandler) GetCinema(c echo.Context) error {
	cinema, err := h.cinemas.FindByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cinema)
}

func (h *CinemaHandler) UpdateCinema(c echo.Context) error {
	var req cinemaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cinema, err := h.cinemas.FindByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	cinema.Name = req.Name
	updated, err := h.cinemas.Update(c.Request().Context(), cinema)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CinemaHandler) DeleteCinema(c echo.Context) error {
	if err := h.cinemas.Delete(c.Request().Context(), c.Param("uid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Rooms ---

func (h *CinemaHandler) CreateRoom(c echo.Context) error {
	var req roomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	// The parent cinema must exist; rooms do not outlive their venue.
	if _, err := h.cinemas.FindByUID(c.Request().Context(), c.Param("cinemaUid")); err != nil {
		return err
	}
	created, err := h.rooms.Create(c.Request().Context(), &domain.Room{
		Name:      req.Name,
		Seats:     req.Seats,
		CinemaUID: c.Param("cinemaUid"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CinemaHandler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.ListByCinema(c.Request().Context(), c.Param("cinemaUid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *CinemaHandler) GetRoom(c echo.Context) error {
	room, err := h.rooms.FindByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

func (h *CinemaHandler) UpdateRoom(c echo.Context) error {
	var req roomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	room, err := h.rooms.FindByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	room.Name = req.Name
	room.Seats = req.Seats
	updated, err := h.rooms.Update(c.Request().Context(), room)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CinemaHandler) DeleteRoom(c echo.Context) error {
	if err := h.rooms.Delete(c.Request().Context(), c.Param("uid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Seances ---

func (h *CinemaHandler) CreateSeance(c echo.Context) error {
	var req seanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.rooms.FindByUID(c.Request().Context(), c.Param("roomUid")); err != nil {
		return err
	}
	created, err := h.seances.Create(c.Request().Context(), &domain.Seance{
		MovieUID: req.Movie,
		Date:     req.Date,
		RoomUID:  c.Param("roomUid"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CinemaHandler) GetSeance(c echo.Context) error {
	seance, err := h.seances.FindByUID(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seance)
}

func (h *CinemaHandler) DeleteSeance(c echo.Context) error {
	if err := h.seances.Delete(c.Request().Context(), c.Param("uid")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
