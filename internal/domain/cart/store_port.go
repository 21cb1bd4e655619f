// internal/domain/cart/store_port.go
package cart

// Store is the durable local persistence port for the cart collection.
// The whole collection is serialized on every mutation and hydrated once at
// session start; the cart is owned by a single client session and never
// shared across sessions.
type Store interface {
	// Load hydrates the stored collection. ok=false means nothing stored yet.
	Load() (items []Item, ok bool, err error)

	// Save overwrites the stored collection with the given items.
	Save(items []Item) error
}
