// internal/application/usecase/wishlist_usecase_test.go
package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "wingx/internal/domain/product"
)

type fakeWishlistStore struct {
	items  []productdom.Product
	exists bool
	saves  int
}

func (s *fakeWishlistStore) Load() ([]productdom.Product, bool, error) {
	return s.items, s.exists, nil
}

func (s *fakeWishlistStore) Save(items []productdom.Product) error {
	s.items = items
	s.exists = true
	s.saves++
	return nil
}

func TestWishlistUsecase_ToggleAddsThenRemoves(t *testing.T) {
	store := &fakeWishlistStore{}
	uc := NewWishlistUsecase(store)
	require.NoError(t, uc.Hydrate())

	p := testProduct("p1")

	in, err := uc.Toggle(p)
	require.NoError(t, err)
	assert.True(t, in)
	assert.True(t, uc.Contains("p1"))

	in, err = uc.Toggle(p)
	require.NoError(t, err)
	assert.False(t, in)
	assert.False(t, uc.Contains("p1"))
	assert.Equal(t, 2, store.saves)
}

func TestWishlistUsecase_GuardsBeforeHydration(t *testing.T) {
	uc := NewWishlistUsecase(&fakeWishlistStore{})

	_, err := uc.Toggle(testProduct("p1"))
	assert.ErrorIs(t, err, ErrWishlistNotHydrated)
}

func TestWishlistUsecase_HydrateRestoresItems(t *testing.T) {
	store := &fakeWishlistStore{items: []productdom.Product{testProduct("p1")}, exists: true}
	uc := NewWishlistUsecase(store)
	require.NoError(t, uc.Hydrate())

	assert.True(t, uc.Contains("p1"))
	assert.Len(t, uc.Items(), 1)
}
