// internal/adapters/out/localstore/keys.go
package localstore

import (
	"wingx/internal/domain/cart"
	"wingx/internal/domain/exchange"
	"wingx/internal/domain/product"
)

// Fixed storage keys. Each collection persists as a single serialized
// document, loaded once at session start and overwritten on every mutation.
const (
	KeyCart     = "wingx_cart"
	KeyWishlist = "wingx_wishlist"
	KeyRate     = "wingx_store_exchange_rate_cache"
)

// CartStore adapts Store to the cart.Store port.
type CartStore struct {
	s *Store
}

func NewCartStore(s *Store) *CartStore { return &CartStore{s: s} }

func (cs *CartStore) Load() ([]cart.Item, bool, error) {
	var items []cart.Item
	ok, err := cs.s.Get(KeyCart, &items)
	return items, ok, err
}

func (cs *CartStore) Save(items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	return cs.s.Put(KeyCart, items)
}

// WishlistStore persists the wishlist as a sibling collection of product
// snapshots under its own key.
type WishlistStore struct {
	s *Store
}

func NewWishlistStore(s *Store) *WishlistStore { return &WishlistStore{s: s} }

func (ws *WishlistStore) Load() ([]product.Product, bool, error) {
	var items []product.Product
	ok, err := ws.s.Get(KeyWishlist, &items)
	return items, ok, err
}

func (ws *WishlistStore) Save(items []product.Product) error {
	if items == nil {
		items = []product.Product{}
	}
	return ws.s.Put(KeyWishlist, items)
}

// RateCache adapts Store to the exchange.Cache port.
type RateCache struct {
	s *Store
}

func NewRateCache(s *Store) *RateCache { return &RateCache{s: s} }

func (rc *RateCache) Load() (exchange.Quote, bool, error) {
	var q exchange.Quote
	ok, err := rc.s.Get(KeyRate, &q)
	return q, ok, err
}

func (rc *RateCache) Save(q exchange.Quote) error {
	return rc.s.Put(KeyRate, q)
}
