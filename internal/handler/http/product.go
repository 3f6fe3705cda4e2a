package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/service"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

const (
	msgProductAdded    = "Product Added"
	msgProductRemoved  = "Product Removed"
	msgProductNotFound = "Product not found"
)

// listProducts serves the public catalog. Optional query parameters narrow
// the listing: category, subCategory and bestseller (true/false).
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := models.ProductFilter{
		Category:    r.URL.Query().Get("category"),
		SubCategory: r.URL.Query().Get("subCategory"),
	}
	if raw := r.URL.Query().Get("bestseller"); raw != "" {
		bestseller := raw == "true"
		filter.Bestseller = &bestseller
	}

	products, err := h.services.CatalogService.ListProducts(ctx, filter)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	writeResponse(w, r, models.ProductListResponse{Success: true, Products: products}, http.StatusOK)
}

func (h *Handler) singleProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ProductSingleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	product, err := h.services.CatalogService.GetProduct(ctx, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound), errors.Is(err, service.ErrInvalidDataProvided):
			respondFailure(w, r, msgProductNotFound)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	writeResponse(w, r, models.ProductResponse{Success: true, Product: product}, http.StatusOK)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ProductAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Sizes:       req.Sizes,
		Bestseller:  req.Bestseller,
	}

	created, err := h.services.CatalogService.AddProduct(ctx, product)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			respondFailure(w, r, "Name, price and category are required")
			return
		}
		respondServerError(w, r, err)
		return
	}

	log.Info().Str("product_id", created.ProductID).Msg("product added to catalog")
	respondSuccess(w, r, msgProductAdded)
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ProductRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondFailure(w, r, msgInvalidJSON)
		return
	}

	if err := h.services.CatalogService.RemoveProduct(ctx, req.ProductID); err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound), errors.Is(err, service.ErrInvalidDataProvided):
			respondFailure(w, r, msgProductNotFound)
		default:
			respondServerError(w, r, err)
		}
		return
	}

	log.Info().Str("product_id", req.ProductID).Msg("product removed from catalog")
	respondSuccess(w, r, msgProductRemoved)
}
