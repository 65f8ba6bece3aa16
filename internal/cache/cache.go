package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

// CartCache keeps the hot cart between user events. The durable store stays
// authoritative; cache failures are tolerated by callers.
type CartCache interface {
	Get(ctx context.Context) ([]domain.CartLine, error)
	Set(ctx context.Context, lines []domain.CartLine) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")

// Noop satisfies CartCache when caching is disabled.
type Noop struct{}

func (Noop) Get(context.Context) ([]domain.CartLine, error) { return nil, ErrCacheMiss }
func (Noop) Set(context.Context, []domain.CartLine) error   { return nil }
func (Noop) Delete(context.Context) error                   { return nil }
