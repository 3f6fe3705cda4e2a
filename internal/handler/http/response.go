package http

import (
	"net/http"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/utils"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// respondSuccess writes the shared envelope with Success=true and HTTP 200.
func respondSuccess(w http.ResponseWriter, r *http.Request, message string) {
	writeResponse(w, r, models.Response{Success: true, Message: message}, http.StatusOK)
}

// respondFailure writes the shared envelope with Success=false. Business
// failures (validation, bad credentials, duplicate email) use HTTP 200; the
// envelope, not the status code, carries the outcome.
func respondFailure(w http.ResponseWriter, r *http.Request, message string) {
	writeResponse(w, r, models.Response{Success: false, Message: message}, http.StatusOK)
}

// respondFailureStatus writes the failure envelope with an explicit HTTP
// status, used where the status code itself is part of the contract
// (authentication, rate limiting, unknown routes).
func respondFailureStatus(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	writeResponse(w, r, models.Response{Success: false, Message: message}, statusCode)
}

// respondServerError logs the error and writes the failure envelope with
// HTTP 500. The error itself is never exposed to the client.
func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed with unexpected error")
	writeResponse(w, r, models.Response{Success: false, Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
}

func writeResponse(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
