package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/service"
)

type OrdersHandler struct {
	orders *service.OrderService
}

func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

type PlaceOrderRequestDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.orders.PlaceOrder(r.Context(), domain.ShippingInfo{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "not_authenticated", err.Error())
		return
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
		return
	case errors.Is(err, service.ErrInvalidShippingInfo):
		respondError(w, http.StatusBadRequest, "invalid_shipping_info", err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("user")

	orders, err := h.orders.ListOrders(r.Context(), username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}
