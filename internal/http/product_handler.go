package http

import (
	"net/http"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog catalog.Catalog
}

func NewProductHandler(cat catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products := h.catalog.Search(query)
	if products == nil {
		products = []*domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.catalog.FindByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "product_not_found", "no product with id "+id)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
