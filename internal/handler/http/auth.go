package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/service"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/internal/utils"
	"github.com/AdityaKanwar22/ShopSphere/internal/validators"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	if message, ok := validators.ValidateRegister(&req); !ok {
		respondFailure(w, r, message)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Str("email", req.Email).Msg("registration with taken email")
			respondFailure(w, r, msgUserAlreadyExists)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.SetSessionCookie(w, token.SignedString, h.cfg.App.TokenDuration, h.cfg.Server.IsProduction())
	respondSuccess(w, r, msgRegistered)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	if message, ok := validators.ValidateLogin(&req); !ok {
		respondFailure(w, r, message)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			respondFailure(w, r, msgUserDoesNotExist)
		case errors.Is(err, service.ErrWrongPassword):
			log.Warn().Str("email", req.Email).Msg("login with wrong password")
			respondFailure(w, r, msgInvalidCredentials)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.SetSessionCookie(w, token.SignedString, h.cfg.App.TokenDuration, h.cfg.Server.IsProduction())
	respondSuccess(w, r, msgLoggedIn)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	if message, ok := validators.ValidateAdminLogin(&req); !ok {
		respondFailure(w, r, message)
		return
	}

	if err := h.services.AuthService.AdminLogin(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidAdminCredentials) {
			log.Warn().Str("email", req.Email).Msg("failed admin login attempt")
			respondFailure(w, r, msgInvalidCredentials)
			return
		}
		respondServerError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateAdminToken(ctx)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.SetSessionCookie(w, token.SignedString, h.cfg.App.TokenDuration, h.cfg.Server.IsProduction())
	respondSuccess(w, r, msgAdminLoggedIn)
}

// logout clears the session cookie. It succeeds whether or not a session
// exists, so repeated calls are harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w, h.cfg.Server.IsProduction())
	respondSuccess(w, r, msgLoggedOut)
}

// csrfToken hands out the anti-forgery token bound to the requester's CSRF
// cookie. Clients echo it back in the X-CSRF-Token header on mutating calls.
func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, models.CSRFTokenResponse{CSRFToken: csrf.Token(r)}, http.StatusOK)
}
