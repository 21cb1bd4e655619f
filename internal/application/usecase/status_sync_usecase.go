// internal/application/usecase/status_sync_usecase.go
package usecase

import (
	"context"
	"log"
	"sync"

	orderdom "wingx/internal/domain/order"
)

// DisplayStatus is the simplified status the tracking page renders. Anything
// the page does not recognize collapses to "verifying" rather than erroring.
type DisplayStatus string

const (
	DisplayLoading  DisplayStatus = "loading"
	DisplayPending  DisplayStatus = "pending_verification"
	DisplayPaid     DisplayStatus = "paid"
	DisplayRejected DisplayStatus = "rejected"
)

// DisplayFor maps a raw order status onto the tracking page vocabulary.
func DisplayFor(s orderdom.Status) DisplayStatus {
	switch s {
	case orderdom.StatusPaid, orderdom.StatusProcessing, orderdom.StatusShipped, orderdom.StatusDelivered:
		return DisplayPaid
	case orderdom.StatusRejected:
		return DisplayRejected
	default:
		return DisplayPending
	}
}

// StatusUpdate is one live tracking event.
type StatusUpdate struct {
	OrderID         string          `json:"orderId"`
	Display         DisplayStatus   `json:"status"`
	RawStatus       orderdom.Status `json:"rawStatus,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`

	// Celebrate fires exactly once, when the display transitions into paid.
	// A stream that opens on an already-paid order still counts: the page
	// starts at loading, so the first paid snapshot is a transition too.
	Celebrate bool `json:"celebrate,omitempty"`
}

// StatusSyncUsecase bridges the persistence watcher to tracking-page
// subscribers, handling edge detection and degraded fallbacks.
type StatusSyncUsecase struct {
	watcher orderdom.Watcher
}

func NewStatusSyncUsecase(watcher orderdom.Watcher) *StatusSyncUsecase {
	return &StatusSyncUsecase{watcher: watcher}
}

// Watch streams status updates for one order until the returned unsubscribe
// runs or ctx is cancelled. The first event always arrives, even when the
// backend errors; a broken stream degrades to "verifying" instead of failing.
func (uc *StatusSyncUsecase) Watch(ctx context.Context, orderID string, fn func(StatusUpdate)) (func(), error) {
	var mu sync.Mutex
	previous := DisplayLoading

	handler := func(snap orderdom.Snapshot, err error) {
		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			log.Printf("[status-sync] watch error: order=%s err=%v", orderID, err)
			fn(StatusUpdate{OrderID: orderID, Display: DisplayPending})
			return
		}
		if !snap.Exists {
			fn(StatusUpdate{OrderID: orderID, Display: DisplayPending})
			return
		}

		cur := snap.Order.Status
		display := DisplayFor(cur)
		update := StatusUpdate{
			OrderID:         orderID,
			Display:         display,
			RawStatus:       cur,
			RejectionReason: snap.Order.RejectionReason,
		}
		if display == DisplayPaid && previous != DisplayPaid {
			update.Celebrate = true
		}
		previous = display
		fn(update)
	}

	unsubscribe, err := uc.watcher.OnSnapshot(ctx, orderID, handler)
	if err != nil {
		return nil, err
	}
	return unsubscribe, nil
}
