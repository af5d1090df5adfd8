package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmzz209741/products-inventory/internal/domain"
)

func sampleProduct(id string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        "Laptop",
		Description: "A powerful laptop",
		Price:       1299.99,
		ImageURL:    "https://example.com/laptop.jpg",
	}
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	s := NewMemoryStore()

	product, err := s.Get(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, product)
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	stored, err := s.Put(ctx, sampleProduct("p1"))
	require.NoError(t, err)
	assert.Equal(t, "p1", stored.ID)

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 1299.99, got.Price)
}

func TestMemoryStore_PutRequiresID(t *testing.T) {
	s := NewMemoryStore()

	product := sampleProduct("")
	stored, err := s.Put(context.Background(), product)

	assert.ErrorIs(t, err, ErrMissingID)
	assert.Nil(t, stored)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, sampleProduct("p1"))
	require.NoError(t, err)

	updated := sampleProduct("p1")
	updated.Price = 999.99
	_, err = s.Put(ctx, updated)
	require.NoError(t, err)

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 999.99, got.Price)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_DeleteNotFound(t *testing.T) {
	s := NewMemoryStore()

	err := s.Delete(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, sampleProduct("p1"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "p1"))

	_, err = s.Get(ctx, "p1")
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Second delete of the same id reports not found, state unchanged.
	err = s.Delete(ctx, "p1")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_ScanPagination(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := s.Put(ctx, sampleProduct(fmt.Sprintf("p%d", i)))
		require.NoError(t, err)
	}

	seen := make(map[string]bool)

	page1, token1, err := s.Scan(ctx, 3, "")
	require.NoError(t, err)
	assert.Len(t, page1, 3)
	assert.NotEmpty(t, token1)

	page2, token2, err := s.Scan(ctx, 3, token1)
	require.NoError(t, err)
	assert.Len(t, page2, 3)
	assert.NotEmpty(t, token2)

	page3, token3, err := s.Scan(ctx, 3, token2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
	assert.Empty(t, token3)

	for _, page := range [][]domain.Product{page1, page2, page3} {
		for _, p := range page {
			assert.False(t, seen[p.ID], "product %s returned twice", p.ID)
			seen[p.ID] = true
		}
	}
	assert.Len(t, seen, 7)
}

func TestMemoryStore_ScanExactMultiple(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := s.Put(ctx, sampleProduct(fmt.Sprintf("p%d", i)))
		require.NoError(t, err)
	}

	// A full final page still returns a token; the follow-up scan is the
	// empty page that ends the iteration.
	page1, token1, err := s.Scan(ctx, 4, "")
	require.NoError(t, err)
	assert.Len(t, page1, 4)
	assert.NotEmpty(t, token1)

	page2, token2, err := s.Scan(ctx, 4, token1)
	require.NoError(t, err)
	assert.Empty(t, page2)
	assert.Empty(t, token2)
}

func TestMemoryStore_ScanEmpty(t *testing.T) {
	s := NewMemoryStore()

	products, token, err := s.Scan(context.Background(), 10, "")

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Empty(t, token)
}
