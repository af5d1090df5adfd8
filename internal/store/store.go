package store

import (
	"context"
	"errors"

	"github.com/nmzz209741/products-inventory/internal/domain"
)

// Common errors returned by the store
var (
	ErrProductNotFound = errors.New("product not found")
	ErrMissingID       = errors.New("product has no ID")
)

// ItemStore defines the interface for product storage operations
// Consumers define this interface, not the concrete implementation
type ItemStore interface {
	// Get returns the product stored under id, or ErrProductNotFound
	Get(ctx context.Context, id string) (*domain.Product, error)

	// Scan returns up to limit products starting after startKey, plus the
	// continuation token for the next page ("" when no further items exist).
	// The token is opaque to callers and only valid if it came from a
	// previous Scan. No total ordering is guaranteed across pages.
	Scan(ctx context.Context, limit int64, startKey string) ([]domain.Product, string, error)

	// Put upserts the product unconditionally (last writer wins) and
	// returns the written product. Fails with ErrMissingID when the
	// product has no ID.
	Put(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// Delete removes the product stored under id. It reads before
	// deleting so an already-absent id fails with ErrProductNotFound.
	Delete(ctx context.Context, id string) error
}
