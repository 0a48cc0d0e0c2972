package providers

import (
	"log/slog"
	"time"

	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/samber/do/v2"
)

// RateLimiterHandle holds the per-client limiter. Limiter is nil when rate
// limiting is disabled.
type RateLimiterHandle struct {
	Limiter *middleware.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	if h.Limiter == nil {
		return nil
	}
	return h.Limiter.Shutdown()
}

// ProvideRateLimiter builds the keyed limiter and starts its idle sweep.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	rl := cfg.RateLimit
	if rl.RequestsPerSecond <= 0 {
		log.Info("Rate limiting disabled")
		return &RateLimiterHandle{}, nil
	}

	idle := time.Duration(rl.IdleTTLSeconds) * time.Second
	log.Info("Rate limiting enabled",
		"requests_per_second", rl.RequestsPerSecond,
		"burst", rl.Burst,
		"trust_proxy", cfg.Server.TrustProxy)
	return &RateLimiterHandle{Limiter: middleware.NewKeyedRateLimiter(rl.RequestsPerSecond, rl.Burst, idle)}, nil
}
