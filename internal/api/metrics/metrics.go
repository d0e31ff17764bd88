// Package metrics defines and registers all custom Prometheus metrics for the
// cinema platform services. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default registry
// via promauto at import time; the /metrics endpoint on each router exposes
// them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cinema"

// ── Token metrics ─────────────────────────────────────────────────────────────

// TokenValidationsTotal counts token validation outcomes. The API boundary
// collapses every failure to one status; this metric keeps the internal
// taxonomy visible.
// Label:
//   - reason: "valid", "expired", "bad_signature", "malformed", or the same
//     prefixed with "refresh_" for refresh-token checks
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of token validation checks, labelled by outcome reason.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts issued access+refresh token pairs.
// Label:
//   - flow: "login" (credential issuance) or "refresh" (token exchange)
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of token pairs issued, by flow.",
	},
	[]string{"flow"},
)

// RemoteValidationDuration measures outbound calls from dependent services to
// the identity service's validate endpoint.
// Label:
//   - outcome: "valid", "invalid", or "unavailable"
var RemoteValidationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_validation_duration_seconds",
		Help:      "Duration of remote token validation calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts reservations persisted in open status.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created.",
	},
)

// ReservationsConfirmedTotal counts open reservations confirmed.
var ReservationsConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_confirmed_total",
		Help:      "Total number of reservations confirmed.",
	},
)

// ReservationsRejectedTotal counts reservation attempts rejected before any
// local write.
// Label:
//   - reason: "movie_not_found", "not_bookable", or "catalog_unavailable"
var ReservationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_rejected_total",
		Help:      "Total number of reservation attempts rejected, by reason.",
	},
	[]string{"reason"},
)

// ReservationsExpiredTotal counts open reservations swept to expired.
var ReservationsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_expired_total",
		Help:      "Total number of stale open reservations expired by the sweeper.",
	},
)
