// Package client holds the outbound HTTP clients the reservation service
// uses to talk to its peers: the identity service's validate endpoint and the
// movie service's catalog. Every call carries the request context, a hard
// timeout, and a single bounded-backoff retry on transport failure.
package client

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const retryBackoff = 200 * time.Millisecond

// doWithRetry performs the request and retries exactly once, after a short
// backoff, when the transport itself fails. HTTP-level errors (4xx/5xx) are
// responses, not transport failures, and are never retried here.
func doWithRetry(httpClient *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err == nil {
		return resp, nil
	}

	select {
	case <-req.Context().Done():
		return nil, err
	case <-time.After(retryBackoff):
	}

	return httpClient.Do(req.Clone(req.Context()))
}

func newGetRequest(ctx context.Context, base string, parts ...string) (*http.Request, error) {
	url := strings.TrimSuffix(base, "/") + "/" + strings.Join(parts, "/")
	return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
}
