package http

import (
	"context"
	"net/http"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/utils"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie set at login, validates the embedded JWT via
// [service.AuthService.ParseToken], and on success stores the session's
// user ID and role in the request context under [utils.UserIDCtxKey] and
// [utils.RoleCtxKey] before delegating to the next handler. The session is
// carried exclusively by the cookie; an Authorization header is never
// consulted.
//
// Requests without a cookie, or with an expired, tampered or otherwise
// invalid token, are rejected with HTTP 401 and the shared failure envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(utils.SessionCookieName)
		if err != nil {
			log.Warn().Err(ErrNoSessionCookie).Send()
			respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("session token rejected")
			respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
			return
		}

		// Store the session identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.RoleCtxKey, token.SessionClaims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin allows only sessions carrying the admin role past. It must be
// mounted after [Handler.auth], which populates the role in the context.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != models.RoleAdmin {
			log.Warn().Err(ErrNotAdmin).Str("role", role).Send()
			respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
