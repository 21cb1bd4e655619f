// internal/application/usecase/wishlist_usecase.go
package usecase

import (
	"errors"
	"log"
	"sync"

	productdom "wingx/internal/domain/product"
)

var ErrWishlistNotHydrated = errors.New("wishlist_usecase: not hydrated")

// WishlistStore is the persistence port for the wishlist collection.
type WishlistStore interface {
	Load() ([]productdom.Product, bool, error)
	Save(items []productdom.Product) error
}

// WishlistUsecase keeps the sibling wishlist collection: toggle semantics,
// membership checks, same hydration guard as the cart.
type WishlistUsecase struct {
	mu    sync.Mutex
	store WishlistStore

	items    []productdom.Product
	hydrated bool
}

func NewWishlistUsecase(store WishlistStore) *WishlistUsecase {
	return &WishlistUsecase{store: store}
}

func (uc *WishlistUsecase) Hydrate() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items, ok, err := uc.store.Load()
	if err != nil {
		log.Printf("[wishlist] hydrate failed: %v", err)
		uc.hydrated = true
		return nil
	}
	if ok {
		uc.items = items
	}
	uc.hydrated = true
	return nil
}

// Toggle adds the product when absent and removes it when present, returning
// whether the product ended up in the list.
func (uc *WishlistUsecase) Toggle(p productdom.Product) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.hydrated {
		return false, ErrWishlistNotHydrated
	}
	if err := p.Validate(); err != nil {
		return false, err
	}

	for i := range uc.items {
		if uc.items[i].ID == p.ID {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			uc.persistLocked()
			return false, nil
		}
	}
	uc.items = append(uc.items, p)
	uc.persistLocked()
	return true, nil
}

func (uc *WishlistUsecase) Contains(productID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, p := range uc.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (uc *WishlistUsecase) Items() []productdom.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]productdom.Product, len(uc.items))
	copy(out, uc.items)
	return out
}

func (uc *WishlistUsecase) persistLocked() {
	if err := uc.store.Save(uc.items); err != nil {
		log.Printf("[wishlist] persist failed: %v", err)
	}
}
