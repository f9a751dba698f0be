package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts dispense attempts by terminal outcome.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "faucet_requests_total", Help: "Dispense requests by outcome"},
		[]string{"outcome"},
	)
	// RateLimitHits counts rejections by which key blocked the request.
	RateLimitHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "faucet_rate_limit_total", Help: "Rate limit rejections by key type"},
		[]string{"type"},
	)
	// DispensedMist totals tokens actually sent, in MIST.
	DispensedMist = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "faucet_dispensed_mist_total", Help: "Total MIST dispensed"},
	)
	// RateLimitFallbackActive is 1 while the shared limiter backend is
	// unreachable and the in-memory fallback is serving.
	RateLimitFallbackActive = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "faucet_rate_limit_fallback_active", Help: "1 when the in-memory rate limit fallback is active"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RateLimitHits, DispensedMist, RateLimitFallbackActive)
}

// Outcome labels for RequestsTotal.
const (
	OutcomeCompleted   = "completed"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
	OutcomeInvalid     = "invalid_address"
)
