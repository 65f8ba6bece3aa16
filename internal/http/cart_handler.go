package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxLineQuantity = 99

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Lines  []domain.CartLine `json:"lines"`
	Totals domain.CartTotals `json:"totals"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, r, http.StatusOK)
}

func (h *CartHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.cart.Totals(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, totals)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must not be empty")
		return
	}
	if req.Quantity <= 0 || req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if err := h.cart.AddItem(r.Context(), req.ProductID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	h.respondCart(w, r, http.StatusCreated)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	// Zero or negative quantity removes the line; an unknown product id is
	// a documented no-op, never an error.
	if err := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	h.respondCart(w, r, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	if err := h.cart.RemoveItem(r.Context(), productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	h.respondCart(w, r, http.StatusOK)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, status int) {
	lines, err := h.cart.GetCart(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	totals, err := h.cart.Totals(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	respondJSON(w, status, CartResponseDTO{Lines: lines, Totals: totals})
}
