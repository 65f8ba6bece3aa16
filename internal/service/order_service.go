package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderService owns the append-only order ledger. Orders are created at
// checkout from the live cart and session, then never edited or removed.
type OrderService struct {
	store    repository.Store
	cart     *CartService
	accounts *AccountService
	catalog  catalog.Catalog
}

func NewOrderService(store repository.Store, cart *CartService, accounts *AccountService, cat catalog.Catalog) *OrderService {
	return &OrderService{
		store:    store,
		cart:     cart,
		accounts: accounts,
		catalog:  cat,
	}
}

// PlaceOrder checks every precondition before touching any state: an active
// session, a non-empty cart, and shipping info with name and address. On
// success exactly one order is appended and the cart is cleared; on any
// failure the ledger and the cart are left untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, shipping domain.ShippingInfo) (*domain.Order, error) {
	username, err := s.accounts.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, ErrNotAuthenticated
	}

	lines, err := s.cart.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if strings.TrimSpace(shipping.Name) == "" || strings.TrimSpace(shipping.Address) == "" {
		return nil, ErrInvalidShippingInfo
	}

	order := domain.Order{
		ID:        "ord_" + uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
		Items:     s.snapshotItems(lines),
		Totals:    ComputeTotals(lines, s.catalog),
		Shipping:  shipping,
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)

	if err := s.store.Put(ctx, repository.KeyOrders, orders); err != nil {
		return nil, err
	}

	// The order is durable at this point; a failed cart reset must not
	// surface as a failed checkout.
	if err := s.cart.Clear(ctx); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Error("order placed but cart reset failed")
	}

	return &order, nil
}

// ListOrders returns the ledger in insertion order. A non-empty username
// filters to that user's orders. Read-only.
func (s *OrderService) ListOrders(ctx context.Context, username string) ([]domain.Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	if username == "" {
		return orders, nil
	}

	var filtered []domain.Order
	for _, o := range orders {
		if o.Username == username {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// snapshotItems freezes title and price per line at purchase time. A line
// whose product vanished from the catalog keeps its id as the title and a
// zero price, matching the totals computation that excludes it.
func (s *OrderService) snapshotItems(lines []domain.CartLine) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := domain.OrderItem{
			ProductID: line.ProductID,
			Title:     line.ProductID,
			Quantity:  line.Quantity,
		}
		if p, ok := s.catalog.FindByID(line.ProductID); ok {
			item.Title = p.Title
			item.Price = p.Price
		}
		items = append(items, item)
	}
	return items
}

func (s *OrderService) loadOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := s.store.Get(ctx, repository.KeyOrders, &orders)
	switch {
	case err == nil:
		return orders, nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil, nil
	case errors.Is(err, repository.ErrCorruptRecord):
		logrus.WithError(err).Warn("orders record corrupt, falling back to empty ledger")
		return nil, nil
	default:
		return nil, err
	}
}
