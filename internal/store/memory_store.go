package store

import (
	"context"
	"sort"
	"sync"

	"github.com/nmzz209741/products-inventory/internal/domain"
)

// MemoryStore implements ItemStore with in-memory storage. It backs the
// handler tests and doubles as a no-infrastructure driver for local runs.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewMemoryStore creates a new in-memory product store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]domain.Product),
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

func (s *MemoryStore) Scan(_ context.Context, limit int64, startKey string) ([]domain.Product, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	products := make([]domain.Product, 0, limit)
	for _, id := range ids {
		if startKey != "" && id <= startKey {
			continue
		}
		products = append(products, s.products[id])
		if int64(len(products)) == limit {
			break
		}
	}

	nextKey := ""
	if int64(len(products)) == limit {
		nextKey = products[len(products)-1].ID
	}

	return products, nextKey, nil
}

func (s *MemoryStore) Put(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		return nil, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = *product
	return product, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// Len reports how many products are stored. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
