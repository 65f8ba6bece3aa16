package catalog

import "github.com/fjod/go_storefront/internal/domain"

// Default returns the demo storefront's product set.
func Default() *Static {
	return NewStatic([]*domain.Product{
		{
			ID:          "p1",
			Title:       "MacBook Pro",
			Price:       159900,
			Description: "Lightweight laptop with 32GB RAM and 1TB SSD.",
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p2",
			Title:       "iPhone 16 Pro",
			Price:       540000,
			Description: "6.1 inch AMOLED display, dual camera, 5000mAh battery.",
			ImageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p3",
			Title:       "boAt Rockerz 650 Pro Wireless Headphone",
			Price:       2999,
			Description: "Over-ear with noise cancellation and 40-hour battery.",
			ImageURL:    "https://images.unsplash.com/photo-1511367461989-f85a21fda167?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p4",
			Title:       "Noise Pro 6 1.85 Inch AMOLED Display",
			Price:       6999,
			Description: "Fitness tracking, heart-rate, GPS, AMOLED screen.",
			ImageURL:    "https://images.unsplash.com/photo-1519744792095-2f2205e87b6f?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p5",
			Title:       "Keyboard",
			Price:       3499,
			Description: "RGB mechanical keyboard with tactile switches.",
			ImageURL:    "https://images.unsplash.com/photo-1516387938699-a93567ec168e?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p6",
			Title:       "Puma Men's Court Shatter Low Sneakers",
			Price:       2100,
			Description: "Durable low sneakers with cushioned sole.",
			ImageURL:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:          "p7",
			Title:       "Gaming Mouse GX Ultra",
			Price:       1599,
			Description: "Ergonomic gaming mouse with RGB lighting and 16000 DPI sensor.",
			ImageURL:    "https://m.media-amazon.com/images/I/61mpMH5TzkL._AC_SL1500_.jpg",
		},
		{
			ID:          "p8",
			Title:       "Redmi 13C",
			Price:       15999,
			Description: "Smooth 6.74 90Hz display, 50MP AI triple camera.",
			ImageURL:    "https://m.media-amazon.com/images/I/71d1ytcCntL._AC_SL1500_.jpg",
		},
	})
}
