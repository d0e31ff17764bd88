package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/api/metrics"
	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// AuthClient implements ports.TokenValidator against the identity service's
// network-exposed validate endpoint. Its semantics match the in-process
// validator exactly, with one addition: when the identity service cannot be
// reached, Validate returns domain.ErrValidationUnavailable so a transient
// outage is never reported as an invalid token.
type AuthClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewAuthClient(baseURL string, timeout time.Duration, log zerolog.Logger) *AuthClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AuthClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type validateResponse struct {
	AccessToken     string    `json:"accessToken"`
	AccessExpiresAt time.Time `json:"accessTokenExpiresAt"`
	UserUID         string    `json:"userId"`
	Role            string    `json:"role"`
}

// Validate calls GET {base}/validate/{token} on the identity service.
func (c *AuthClient) Validate(ctx context.Context, accessToken string) (*domain.TokenClaims, error) {
	start := time.Now()

	req, err := newGetRequest(ctx, c.baseURL, "validate", url.PathEscape(accessToken))
	if err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}

	resp, err := doWithRetry(c.http, req)
	if err != nil {
		metrics.RemoteValidationDuration.WithLabelValues("unavailable").Observe(time.Since(start).Seconds())
		c.log.Warn().Err(err).Msg("token validation call failed")
		return nil, domain.ErrValidationUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body validateResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			metrics.RemoteValidationDuration.WithLabelValues("unavailable").Observe(time.Since(start).Seconds())
			return nil, domain.ErrValidationUnavailable
		}
		metrics.RemoteValidationDuration.WithLabelValues("valid").Observe(time.Since(start).Seconds())
		return &domain.TokenClaims{
			UserUID:   body.UserUID,
			Role:      body.Role,
			ExpiresAt: body.AccessExpiresAt,
		}, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// The identity service collapses every invalid-token reason to one
		// status; mirror that here.
		metrics.RemoteValidationDuration.WithLabelValues("invalid").Observe(time.Since(start).Seconds())
		return nil, domain.ErrTokenNotFound

	default:
		metrics.RemoteValidationDuration.WithLabelValues("unavailable").Observe(time.Since(start).Seconds())
		c.log.Warn().Int("status", resp.StatusCode).Msg("token validation returned server error")
		return nil, domain.ErrValidationUnavailable
	}
}
