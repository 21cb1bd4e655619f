// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderdom "wingx/internal/domain/order"
)

const ordersCollection = "orders"

// OrderRepositoryFS is the Firestore implementation of order.Repository.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) ordersCol() *firestore.CollectionRef {
	return r.Client.Collection(ordersCollection)
}

// ========================
// Repository impl
// ========================

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	if r.Client == nil {
		return orderdom.Order{}, errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, orderdom.ErrNotFound
	}

	snap, err := r.ordersCol().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}
	return docToOrder(snap)
}

// Create persists a brand-new order as a single document write. The payment
// report (when present) travels inside the same write, so an order is never
// observable without its payment evidence. An idempotency key, when supplied,
// becomes the document id: a duplicate submit hits AlreadyExists and maps to
// ErrConflict instead of a second order.
func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	if r.Client == nil {
		return orderdom.Order{}, errors.New("firestore client is nil")
	}

	var docRef *firestore.DocumentRef
	switch {
	case strings.TrimSpace(o.ID) != "":
		docRef = r.ordersCol().Doc(strings.TrimSpace(o.ID))
	case strings.TrimSpace(o.IdempotencyKey) != "":
		docRef = r.ordersCol().Doc(strings.TrimSpace(o.IdempotencyKey))
	default:
		docRef = r.ordersCol().NewDoc()
	}
	o.ID = docRef.ID

	data := orderToDoc(o)
	// Timestamps are server-assigned, never client-supplied.
	data["createdAt"] = firestore.ServerTimestamp
	data["updatedAt"] = firestore.ServerTimestamp

	if _, err := docRef.Create(ctx, data); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return orderdom.Order{}, orderdom.ErrConflict
		}
		return orderdom.Order{}, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return orderdom.Order{}, err
	}
	return docToOrder(snap)
}

func (r *OrderRepositoryFS) UpdateStatus(ctx context.Context, id string, patch orderdom.StatusPatch) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.ErrNotFound
	}

	updates := []firestore.Update{
		{Path: "status", Value: string(patch.Status)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if patch.VerifiedAt {
		updates = append(updates, firestore.Update{Path: "verifiedAt", Value: firestore.ServerTimestamp})
	}
	if patch.RejectionReason != nil {
		updates = append(updates, firestore.Update{Path: "rejectionReason", Value: *patch.RejectionReason})
	}

	_, err := r.ordersCol().Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *OrderRepositoryFS) ListPendingVerification(ctx context.Context) ([]orderdom.Order, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	q := r.ordersCol().
		Where("status", "==", string(orderdom.StatusPendingVerification)).
		OrderBy("createdAt", firestore.Desc)

	it := q.Documents(ctx)
	defer it.Stop()

	var out []orderdom.Order
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		o, err := docToOrder(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
