package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// MovieClient implements ports.MovieCatalog against the movie service's HTTP
// API. The lookup is read-only; the reservation workflow only needs the
// bookable flag and the id.
type MovieClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewMovieClient(baseURL string, timeout time.Duration, log zerolog.Logger) *MovieClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MovieClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// movieHALEnvelope matches the movie service's GET /movies/{id} response.
type movieHALEnvelope struct {
	Data *domain.Movie `json:"data"`
}

// FetchMovie calls GET {base}/movies/{id} on the movie service.
func (c *MovieClient) FetchMovie(ctx context.Context, id string) (*domain.Movie, error) {
	req, err := newGetRequest(ctx, c.baseURL, "movies", url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("movie request: %w", err)
	}

	resp, err := doWithRetry(c.http, req)
	if err != nil {
		c.log.Warn().Err(err).Str("movie_id", id).Msg("movie lookup call failed")
		return nil, domain.ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var envelope movieHALEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Data == nil {
			return nil, domain.ErrCatalogUnavailable
		}
		return envelope.Data, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrMovieNotFound

	default:
		c.log.Warn().Int("status", resp.StatusCode).Str("movie_id", id).Msg("movie lookup returned unexpected status")
		return nil, domain.ErrCatalogUnavailable
	}
}
