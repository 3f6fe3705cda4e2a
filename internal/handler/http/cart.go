package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/service"
	"github.com/AdityaKanwar22/ShopSphere/internal/utils"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

const msgInvalidCartData = "Item and size are required"

// getCart returns the cart snapshot of the authenticated user.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	cart, err := h.services.CartService.GetCart(ctx, userID)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	writeResponse(w, r, models.CartResponse{Success: true, CartData: cart}, http.StatusOK)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	var req models.CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	cart, err := h.services.CartService.AddToCart(ctx, userID, req.ItemID, req.Size)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			respondFailure(w, r, msgInvalidCartData)
			return
		}
		respondServerError(w, r, err)
		return
	}

	writeResponse(w, r, models.CartResponse{Success: true, CartData: cart}, http.StatusOK)
}

func (h *Handler) updateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	var req models.CartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	cart, err := h.services.CartService.UpdateCart(ctx, userID, req.ItemID, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			respondFailure(w, r, msgInvalidCartData)
			return
		}
		respondServerError(w, r, err)
		return
	}

	writeResponse(w, r, models.CartResponse{Success: true, CartData: cart}, http.StatusOK)
}
