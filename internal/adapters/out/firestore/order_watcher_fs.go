// internal/adapters/out/firestore/order_watcher_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdom "wingx/internal/domain/order"
)

// OrderWatcherFS implements order.Watcher on top of Firestore document
// snapshot listeners. Each subscription watches exactly one order document
// and delivers snapshots in the order the backing store emits them.
type OrderWatcherFS struct {
	Client *firestore.Client
}

func NewOrderWatcherFS(client *firestore.Client) *OrderWatcherFS {
	return &OrderWatcherFS{Client: client}
}

// OnSnapshot attaches a listener to one order document. The current snapshot
// is delivered immediately, then every subsequent change until the returned
// unsubscribe func is called (or ctx is canceled). A subscription that is
// never detached keeps streaming; callers own the teardown.
func (w *OrderWatcherFS) OnSnapshot(
	ctx context.Context,
	orderID string,
	h orderdom.SnapshotHandler,
) (func(), error) {
	if w.Client == nil {
		return nil, errors.New("firestore client is nil")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, orderdom.ErrNotFound
	}

	ctx, cancel := context.WithCancel(ctx)
	it := w.Client.Collection(ordersCollection).Doc(orderID).Snapshots(ctx)

	go func() {
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("[order-watch] %s: snapshot stream failed: %v", orderID, err)
				h(orderdom.Snapshot{}, err)
				return
			}

			ev := orderdom.Snapshot{At: time.Now().UTC()}
			if snap.Exists() {
				o, derr := docToOrder(snap)
				if derr != nil {
					log.Printf("[order-watch] %s: undecodable snapshot: %v", orderID, derr)
					h(orderdom.Snapshot{}, derr)
					continue
				}
				ev.Order = o
				ev.Exists = true
			}
			h(ev, nil)
		}
	}()

	return cancel, nil
}
