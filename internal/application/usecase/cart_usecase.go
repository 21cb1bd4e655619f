// internal/application/usecase/cart_usecase.go
package usecase

import (
	"errors"
	"log"
	"sync"

	cartdom "wingx/internal/domain/cart"
	productdom "wingx/internal/domain/product"
)

var (
	ErrCartNotHydrated     = errors.New("cart_usecase: not hydrated")
	ErrCartVariantRequired = errors.New("cart_usecase: size selection required")
)

// CartUsecase owns the session cart: it serializes access, persists every
// mutation, and guards against writes racing the initial load.
type CartUsecase struct {
	mu    sync.Mutex
	store cartdom.Store

	cart     cartdom.Cart
	hydrated bool

	// openPending is raised on every successful Add so the caller can pop
	// the cart drawer exactly once per add.
	openPending bool
}

func NewCartUsecase(store cartdom.Store) *CartUsecase {
	return &CartUsecase{store: store}
}

// Hydrate loads the persisted cart. Until it runs, mutations are rejected so
// an early write cannot clobber the stored cart with an empty one.
func (uc *CartUsecase) Hydrate() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items, ok, err := uc.store.Load()
	if err != nil {
		log.Printf("[cart] hydrate failed: %v", err)
		// Corrupt or unreadable storage degrades to an empty cart.
		uc.cart = cartdom.Cart{}
		uc.hydrated = true
		return nil
	}
	if ok {
		uc.cart = cartdom.Cart{Items: items}
	}
	uc.hydrated = true
	return nil
}

// Add puts one unit of the product in the cart, merging into an existing line
// when the (product, size, color) key matches. Products that define sizes
// require an explicit size.
func (uc *CartUsecase) Add(p productdom.Product, size, color string) (cartdom.AddResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.hydrated {
		return cartdom.ResultAdded, ErrCartNotHydrated
	}
	if p.HasSizes() && size == "" {
		return cartdom.ResultAdded, ErrCartVariantRequired
	}

	res, err := uc.cart.Add(p, size, color)
	if err != nil {
		return res, err
	}
	uc.openPending = true
	uc.persistLocked()
	return res, nil
}

// Remove drops a line by its composite id. Unknown ids are a no-op but still
// persist, keeping storage in sync with memory.
func (uc *CartUsecase) Remove(cartItemID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.hydrated {
		return ErrCartNotHydrated
	}
	uc.cart.Remove(cartItemID)
	uc.persistLocked()
	return nil
}

// UpdateQuantity applies a delta to a line, clamped at a minimum of 1.
func (uc *CartUsecase) UpdateQuantity(cartItemID string, delta int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.hydrated {
		return ErrCartNotHydrated
	}
	uc.cart.UpdateQuantity(cartItemID, delta)
	uc.persistLocked()
	return nil
}

// Clear empties the cart.
func (uc *CartUsecase) Clear() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.hydrated {
		return ErrCartNotHydrated
	}
	uc.cart.Clear()
	uc.persistLocked()
	return nil
}

// Items returns a copy of the current lines.
func (uc *CartUsecase) Items() []cartdom.Item {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]cartdom.Item, len(uc.cart.Items))
	copy(out, uc.cart.Items)
	return out
}

func (uc *CartUsecase) TotalItems() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.TotalItems()
}

func (uc *CartUsecase) TotalPrice() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.TotalPrice()
}

func (uc *CartUsecase) IsEmpty() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cart.IsEmpty()
}

// ConsumeOpenSignal reports whether an Add happened since the last call and
// clears the flag.
func (uc *CartUsecase) ConsumeOpenSignal() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	v := uc.openPending
	uc.openPending = false
	return v
}

func (uc *CartUsecase) persistLocked() {
	if err := uc.store.Save(uc.cart.Items); err != nil {
		log.Printf("[cart] persist failed: %v", err)
	}
}
