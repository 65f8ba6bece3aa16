package service

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ShippingFee is the flat delivery charge applied to any non-empty cart.
const ShippingFee = 99

type CartService struct {
	store   repository.Store
	cache   cache.CartCache
	catalog catalog.Catalog
	sfg     singleflight.Group // Prevents cache stampede
}

func NewCartService(store repository.Store, cartCache cache.CartCache, cat catalog.Catalog) *CartService {
	return &CartService{
		store:   store,
		cache:   cartCache,
		catalog: cat,
	}
}

// GetCart returns the current cart lines, reading through the cache.
// A missing or corrupt persisted record loads as an empty cart.
func (s *CartService) GetCart(ctx context.Context) ([]domain.CartLine, error) {
	v, err, _ := s.sfg.Do(repository.KeyCart, func() (interface{}, error) {
		lines, err := s.cache.Get(ctx)
		if err == nil {
			return lines, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			logrus.WithError(err).Warn("cart cache get failed") // log cache error but continue
		}

		lines, err = s.loadCart(ctx)
		if err != nil {
			return nil, err
		}

		if errSet := s.cache.Set(ctx, lines); errSet != nil {
			logrus.WithError(errSet).Warn("cart cache set failed")
		}

		return lines, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.CartLine), nil
}

// AddItem adds qty to an existing line for productID, or appends a new line.
// Quantity bounds are validated at the HTTP edge.
func (s *CartService) AddItem(ctx context.Context, productID string, qty int) error {
	lines, err := s.loadCart(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{ProductID: productID, Quantity: qty})
	}

	return s.saveCart(ctx, lines)
}

// RemoveItem deletes the line for productID. An unknown product id is a
// silent no-op: idempotent UI actions win over strict validation.
func (s *CartService) RemoveItem(ctx context.Context, productID string) error {
	lines, err := s.loadCart(ctx)
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	return s.saveCart(ctx, kept)
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// below removes the line; an absent line is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, qty int) error {
	lines, err := s.loadCart(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range lines {
		if lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	if qty <= 0 {
		lines = append(lines[:idx], lines[idx+1:]...)
	} else {
		lines[idx].Quantity = qty
	}

	return s.saveCart(ctx, lines)
}

// Clear empties the cart. Checkout calls this after the order is appended.
func (s *CartService) Clear(ctx context.Context) error {
	return s.saveCart(ctx, []domain.CartLine{})
}

// Totals computes the current cart totals against live catalog prices.
func (s *CartService) Totals(ctx context.Context) (domain.CartTotals, error) {
	lines, err := s.GetCart(ctx)
	if err != nil {
		return domain.CartTotals{}, err
	}
	return ComputeTotals(lines, s.catalog), nil
}

// ComputeTotals is a pure function of (cart, catalog). Lines whose product
// is missing from the catalog are excluded, so a stale cart never breaks
// pricing. Shipping is a flat fee on any non-empty subtotal.
func ComputeTotals(lines []domain.CartLine, cat catalog.Catalog) domain.CartTotals {
	var t domain.CartTotals
	for _, line := range lines {
		p, ok := cat.FindByID(line.ProductID)
		if !ok {
			continue
		}
		t.Subtotal += p.Price * float64(line.Quantity)
		t.TotalQuantity += line.Quantity
	}

	if t.Subtotal > 0 {
		t.Shipping = ShippingFee
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

func (s *CartService) loadCart(ctx context.Context) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := s.store.Get(ctx, repository.KeyCart, &lines)
	switch {
	case err == nil:
		return lines, nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, nil
	case errors.Is(err, repository.ErrCorruptRecord):
		logrus.WithError(err).Warn("cart record corrupt, falling back to empty cart")
		return nil, nil
	default:
		return nil, err
	}
}

func (s *CartService) saveCart(ctx context.Context, lines []domain.CartLine) error {
	if err := s.store.Put(ctx, repository.KeyCart, lines); err != nil {
		return err
	}

	s.invalidateCache()
	return nil
}

func (s *CartService) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx); err != nil {
		logrus.WithError(err).Warn("cart cache invalidate failed")
	}
}
