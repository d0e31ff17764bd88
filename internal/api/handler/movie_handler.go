package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// MovieHandler handles catalog CRUD. GET by id returns a HAL-style envelope
// with _links and data; the reservation service's catalog client relies on
// that shape.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

type movieRequest struct {
	Name                     string   `json:"name"        validate:"required,max=128"`
	Description              string   `json:"description" validate:"required,max=4096"`
	Rate                     int      `json:"rate"        validate:"required,gte=1,lte=5"`
	Duration                 int      `json:"duration"    validate:"required,gte=1,lte=240"`
	HasReservationsAvailable *bool    `json:"hasReservationsAvailable"`
	Categories               []string `json:"categories"`
}

type movieLinks struct {
	Self      halLink `json:"self"`
	AllMovies halLink `json:"allMovies"`
}

type halLink struct {
	Href string `json:"href"`
}

// movieHALResponse is the HAL envelope around a single movie.
type movieHALResponse struct {
	Links movieLinks    `json:"_links"`
	Data  *domain.Movie `json:"data"`
}

func toMovieHAL(m *domain.Movie) movieHALResponse {
	return movieHALResponse{
		Links: movieLinks{
			Self:      halLink{Href: "/movies/" + m.ID},
			AllMovies: halLink{Href: "/movies"},
		},
		Data: m,
	}
}

func (h *MovieHandler) bindMovie(c echo.Context) (*domain.Movie, error) {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookable := true
	if req.HasReservationsAvailable != nil {
		bookable = *req.HasReservationsAvailable
	}
	return &domain.Movie{
		Name:                     req.Name,
		Description:              req.Description,
		Rate:                     req.Rate,
		Duration:                 req.Duration,
		HasReservationsAvailable: bookable,
		Categories:               req.Categories,
	}, nil
}

// List handles GET /movies. An empty catalog answers 204.
//
// @Summary      List movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}   domain.Movie
// @Success      204  "empty catalog"
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, movies)
}

// Get handles GET /movies/:id.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  movieHALResponse
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieHAL(movie))
}

// Create handles POST /movies.
//
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      201   {object}  movieHALResponse
// @Failure      400   {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	movie, err := h.bindMovie(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), movie)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMovieHAL(created))
}

// Update handles PUT /movies/:id.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Movie id"
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      200   {object}  movieHALResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	movie, err := h.bindMovie(c)
	if err != nil {
		return err
	}
	movie.ID = c.Param("id")

	updated, err := h.service.Update(c.Request().Context(), movie)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieHAL(updated))
}

// Delete handles DELETE /movies/:id.
//
// @Summary      Delete a movie
// @Tags         movies
// @Param        id  path  string  true  "Movie id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
