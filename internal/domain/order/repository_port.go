// internal/domain/order/repository_port.go
package order

import (
	"context"
	"time"
)

// StatusPatch carries the fields a status transition is allowed to touch.
// Nil pointer fields mean "no change". Timestamps are assigned by the
// persistence layer, never by the caller.
type StatusPatch struct {
	Status          Status
	VerifiedAt      bool    // stamp verification time server-side
	RejectionReason *string // recorded on reject
}

// Repository is the persistence port for Order. Implementations must make
// Create a single atomic document write: an order with a payment report must
// never be observable without it.
type Repository interface {
	// Create persists a brand-new order, assigning the id (or honoring a
	// caller-supplied idempotency key as the id) and server timestamps.
	// Returns ErrConflict when the id already exists.
	Create(ctx context.Context, o Order) (Order, error)

	// GetByID is a point read. Returns ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (Order, error)

	// UpdateStatus applies a transition patch with a server-assigned
	// updatedAt. Returns ErrNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id string, patch StatusPatch) error

	// ListPendingVerification returns orders awaiting human verification,
	// newest first. Consumed by the admin verification surface.
	ListPendingVerification(ctx context.Context) ([]Order, error)
}

// Snapshot is one point-in-time observation of an order document.
type Snapshot struct {
	Order  Order
	Exists bool
	At     time.Time
}

// SnapshotHandler receives consecutive snapshots of a single order. err is
// non-nil when a snapshot could not be delivered; a broken subscription ends
// the stream after reporting it, while an undecodable snapshot is reported
// and the subscription keeps listening for the next change.
type SnapshotHandler func(snap Snapshot, err error)

// Watcher is the real-time read port: attach delivers the current snapshot
// immediately, then every subsequent change until unsubscribed.
type Watcher interface {
	// OnSnapshot subscribes to one order document and returns an
	// unsubscribe capability. The handler must eventually stop being
	// invoked after unsubscribe returns.
	OnSnapshot(ctx context.Context, orderID string, h SnapshotHandler) (unsubscribe func(), err error)
}
