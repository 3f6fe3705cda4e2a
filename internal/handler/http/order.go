package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/service"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/internal/utils"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

const (
	msgOrderPlaced       = "Order Placed"
	msgStatusUpdated     = "Status Updated"
	msgOrderNotFound     = "Order not found"
	msgInvalidOrderData  = "Items and amount are required"
	msgInvalidStatusSent = "Invalid order status"
)

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	var req models.OrderPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	order, err := h.services.OrderService.PlaceOrder(ctx, userID, req.Items, req.Amount, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrEmptyCart):
			respondFailure(w, r, msgInvalidOrderData)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	log.Info().Str("order_id", order.OrderID).Int64("amount", order.Amount).Msg("order placed")
	respondSuccess(w, r, msgOrderPlaced)
}

// userOrders returns the order history of the authenticated user.
func (h *Handler) userOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondFailureStatus(w, r, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	orders, err := h.services.OrderService.ListUserOrders(ctx, userID)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	writeResponse(w, r, models.OrderListResponse{Success: true, Orders: orders}, http.StatusOK)
}

// listOrders returns every order in the store. Admin only.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.services.OrderService.ListAllOrders(ctx)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	writeResponse(w, r, models.OrderListResponse{Success: true, Orders: orders}, http.StatusOK)
}

// updateOrderStatus moves an order to a new fulfilment state. Admin only.
func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	if err := h.services.OrderService.UpdateOrderStatus(ctx, req.OrderID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			respondFailure(w, r, msgInvalidStatusSent)
		case errors.Is(err, store.ErrOrderNotFound), errors.Is(err, service.ErrInvalidDataProvided):
			respondFailure(w, r, msgOrderNotFound)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	log.Info().Str("order_id", req.OrderID).Str("status", req.Status).Msg("order status updated")
	respondSuccess(w, r, msgStatusUpdated)
}
