// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "wingx/internal/domain/cart"
	productdom "wingx/internal/domain/product"
)

type fakeCartStore struct {
	items  []cartdom.Item
	exists bool
	saves  int
	err    error
}

func (s *fakeCartStore) Load() ([]cartdom.Item, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	return s.items, s.exists, nil
}

func (s *fakeCartStore) Save(items []cartdom.Item) error {
	s.items = items
	s.exists = true
	s.saves++
	return nil
}

func testProduct(id string, sizes ...string) productdom.Product {
	return productdom.Product{ID: id, Name: "Crop Top " + id, Price: 12.5, Sizes: sizes}
}

func TestCartUsecase_RejectsMutationsBeforeHydration(t *testing.T) {
	uc := NewCartUsecase(&fakeCartStore{})

	_, err := uc.Add(testProduct("p1"), "", "")
	assert.ErrorIs(t, err, ErrCartNotHydrated)
	assert.ErrorIs(t, uc.Clear(), ErrCartNotHydrated)
}

func TestCartUsecase_HydrateLoadsPersistedItems(t *testing.T) {
	store := &fakeCartStore{
		items: []cartdom.Item{
			{CartItemID: "p1-M-nocolor", Product: testProduct("p1", "S", "M"), SelectedSize: "M", Quantity: 2},
		},
		exists: true,
	}
	uc := NewCartUsecase(store)
	require.NoError(t, uc.Hydrate())

	assert.Equal(t, 2, uc.TotalItems())
	assert.InDelta(t, 25.0, uc.TotalPrice(), 1e-9)
}

func TestCartUsecase_HydrateSurvivesBrokenStorage(t *testing.T) {
	uc := NewCartUsecase(&fakeCartStore{err: errors.New("corrupt")})
	require.NoError(t, uc.Hydrate())
	assert.True(t, uc.IsEmpty())

	_, err := uc.Add(testProduct("p1"), "", "")
	assert.NoError(t, err)
}

func TestCartUsecase_AddPersistsAndSignalsOpen(t *testing.T) {
	store := &fakeCartStore{}
	uc := NewCartUsecase(store)
	require.NoError(t, uc.Hydrate())

	res, err := uc.Add(testProduct("p1"), "", "")
	require.NoError(t, err)
	assert.Equal(t, cartdom.ResultAdded, res)
	assert.Equal(t, 1, store.saves)

	assert.True(t, uc.ConsumeOpenSignal())
	assert.False(t, uc.ConsumeOpenSignal(), "signal fires once per add")

	res, err = uc.Add(testProduct("p1"), "", "")
	require.NoError(t, err)
	assert.Equal(t, cartdom.ResultQuantityUpdated, res)
	assert.Equal(t, 2, uc.TotalItems())
}

func TestCartUsecase_SizeRequiredWhenProductDefinesSizes(t *testing.T) {
	uc := NewCartUsecase(&fakeCartStore{})
	require.NoError(t, uc.Hydrate())

	_, err := uc.Add(testProduct("p1", "S", "M"), "", "")
	assert.ErrorIs(t, err, ErrCartVariantRequired)

	_, err = uc.Add(testProduct("p1", "S", "M"), "M", "")
	assert.NoError(t, err)
}

func TestCartUsecase_RemoveAndClearPersist(t *testing.T) {
	store := &fakeCartStore{}
	uc := NewCartUsecase(store)
	require.NoError(t, uc.Hydrate())

	_, err := uc.Add(testProduct("p1"), "", "")
	require.NoError(t, err)
	_, err = uc.Add(testProduct("p2"), "", "")
	require.NoError(t, err)

	require.NoError(t, uc.Remove(cartdom.ItemKey("p1", "", "")))
	assert.Equal(t, 1, uc.TotalItems())

	require.NoError(t, uc.Clear())
	assert.True(t, uc.IsEmpty())
	assert.Empty(t, store.items)
}
