package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the storefront operations into a chi router. Engine
// access is serialized with a single mutex: the store models one browsing
// session per origin, so requests run strictly in arrival order, matching
// the original single-threaded event model.
func NewRouter(
	cart *service.CartService,
	accounts *service.AccountService,
	orders *service.OrderService,
	cat catalog.Catalog,
	requestTimeout time.Duration,
) http.Handler {
	cartHandler := NewCartHandler(cart)
	authHandler := NewAuthHandler(accounts)
	ordersHandler := NewOrdersHandler(orders)
	productHandler := NewProductHandler(cat)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(serializeEngine())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Get("/{id}", productHandler.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Get("/totals", cartHandler.GetTotals)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", ordersHandler.PlaceOrder)
			r.Get("/", ordersHandler.ListOrders)
		})
	})

	return r
}

func serializeEngine() func(http.Handler) http.Handler {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
