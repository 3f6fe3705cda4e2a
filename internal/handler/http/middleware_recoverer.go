package http

import (
	"net/http"
	"runtime/debug"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// recoverer converts panics in downstream handlers into structured log
// entries and an HTTP 500 failure envelope. The stack trace is included in
// the response only outside production.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				return
			}

			stack := debug.Stack()

			logger.FromRequest(r).Error().
				Any("message", rec).
				Int("status", http.StatusInternalServerError).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("ip", r.RemoteAddr).
				Bytes("stack", stack).
				Msg("panic recovered")

			response := struct {
				models.Response
				Stack string `json:"stack,omitempty"`
			}{
				Response: models.Response{Success: false, Message: http.StatusText(http.StatusInternalServerError)},
			}
			if !h.cfg.Server.IsProduction() {
				response.Stack = string(stack)
			}

			writeResponse(w, r, response, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
