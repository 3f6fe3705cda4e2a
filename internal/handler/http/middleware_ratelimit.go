package http

import (
	"net/http"

	"github.com/go-chi/httprate"
)

// globalRateLimit caps all API traffic per client IP within the configured
// window. Counters live in process memory, so the cap is per instance, not
// per deployment.
func (h *Handler) globalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		h.cfg.RateLimit.GlobalLimit,
		h.cfg.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondFailureStatus(w, r, msgTooManyRequests, http.StatusTooManyRequests)
		}),
	)
}

// loginRateLimit caps login and admin-login attempts per client IP within
// the configured window. One instance is shared by both routes so attempts
// against either count toward the same budget.
func (h *Handler) loginRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		h.cfg.RateLimit.LoginLimit,
		h.cfg.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondFailureStatus(w, r, msgTooManyLogins, http.StatusTooManyRequests)
		}),
	)
}
