package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

func TestMovieClient_FetchMovie_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies/m1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_links":{"self":{"href":"/movies/m1"}},"data":{"id":"m1","name":"Inception","rate":5,"duration":148,"hasReservationsAvailable":true}}`))
	}))
	defer srv.Close()

	c := NewMovieClient(srv.URL, time.Second, zerolog.Nop())
	movie, err := c.FetchMovie(context.Background(), "m1")
	if err != nil {
		t.Fatalf("FetchMovie returned error: %v", err)
	}
	if movie.ID != "m1" || movie.Name != "Inception" {
		t.Fatalf("unexpected movie: %+v", movie)
	}
	if !movie.HasReservationsAvailable {
		t.Fatalf("expected bookable flag set")
	}
}

func TestMovieClient_FetchMovie_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewMovieClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.FetchMovie(context.Background(), "missing"); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieClient_FetchMovie_EmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewMovieClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.FetchMovie(context.Background(), "m1"); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestMovieClient_FetchMovie_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewMovieClient(srv.URL, time.Second, zerolog.Nop())
	if _, err := c.FetchMovie(context.Background(), "m1"); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

// HTTP-level errors are responses, not transport failures: a 5xx must come
// back after a single attempt.
func TestDoWithRetry_NoRetryOnHTTPError(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	req, err := newGetRequest(context.Background(), srv.URL, "movies", "m1")
	if err != nil {
		t.Fatalf("newGetRequest: %v", err)
	}
	resp, err := doWithRetry(srv.Client(), req)
	if err != nil {
		t.Fatalf("doWithRetry returned error: %v", err)
	}
	resp.Body.Close()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one attempt, got %d", got)
	}
}

func TestDoWithRetry_RespectsCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := newGetRequest(ctx, srv.URL, "movies", "m1")
	if err != nil {
		t.Fatalf("newGetRequest: %v", err)
	}

	start := time.Now()
	if _, err := doWithRetry(http.DefaultClient, req); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	// A cancelled context must short-circuit the backoff wait.
	if elapsed := time.Since(start); elapsed > retryBackoff {
		t.Fatalf("cancelled request waited %v", elapsed)
	}
}
