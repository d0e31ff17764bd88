package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

type stubMovieService struct {
	movies map[string]*domain.Movie
}

func newStubMovieService() *stubMovieService {
	return &stubMovieService{movies: make(map[string]*domain.Movie)}
}

func (s *stubMovieService) Create(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	copy := *movie
	copy.ID = "m-1"
	s.movies[copy.ID] = &copy
	return &copy, nil
}

func (s *stubMovieService) Get(_ context.Context, id string) (*domain.Movie, error) {
	if m, ok := s.movies[id]; ok {
		return m, nil
	}
	return nil, domain.ErrMovieNotFound
}

func (s *stubMovieService) List(_ context.Context) ([]domain.Movie, error) {
	var out []domain.Movie
	for _, m := range s.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubMovieService) Update(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if _, ok := s.movies[movie.ID]; !ok {
		return nil, domain.ErrMovieNotFound
	}
	s.movies[movie.ID] = movie
	return movie, nil
}

func (s *stubMovieService) Delete(_ context.Context, id string) error {
	if _, ok := s.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(s.movies, id)
	return nil
}

func newMovieTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMovieHandler_Get_HALEnvelope(t *testing.T) {
	svc := newStubMovieService()
	svc.movies["m-1"] = &domain.Movie{ID: "m-1", Name: "Inception", HasReservationsAvailable: true}
	h := NewMovieHandler(svc)

	c, rec := newMovieTestContext(http.MethodGet, "/movies/m-1", "")
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Links struct {
			Self struct {
				Href string `json:"href"`
			} `json:"self"`
			AllMovies struct {
				Href string `json:"href"`
			} `json:"allMovies"`
		} `json:"_links"`
		Data *domain.Movie `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Links.Self.Href != "/movies/m-1" || envelope.Links.AllMovies.Href != "/movies" {
		t.Fatalf("unexpected links: %+v", envelope.Links)
	}
	if envelope.Data == nil || envelope.Data.Name != "Inception" {
		t.Fatalf("unexpected data: %+v", envelope.Data)
	}
}

func TestMovieHandler_Get_NotFound(t *testing.T) {
	h := NewMovieHandler(newStubMovieService())

	c, _ := newMovieTestContext(http.MethodGet, "/movies/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieHandler_List_EmptyIs204(t *testing.T) {
	h := NewMovieHandler(newStubMovieService())

	c, rec := newMovieTestContext(http.MethodGet, "/movies", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for empty catalog, got %d", rec.Code)
	}
}

func TestMovieHandler_Create(t *testing.T) {
	h := NewMovieHandler(newStubMovieService())

	body := `{"name":"Inception","description":"A heist inside dreams.","rate":5,"duration":148}`
	c, rec := newMovieTestContext(http.MethodPost, "/movies", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var envelope struct {
		Data *domain.Movie `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The bookable flag defaults to true when omitted.
	if envelope.Data == nil || !envelope.Data.HasReservationsAvailable {
		t.Fatalf("expected bookable default, got %+v", envelope.Data)
	}
}

func TestMovieHandler_Create_RejectsBadPayload(t *testing.T) {
	h := NewMovieHandler(newStubMovieService())

	c, _ := newMovieTestContext(http.MethodPost, "/movies", `{"name":"x","rate":9,"duration":148}`)
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
