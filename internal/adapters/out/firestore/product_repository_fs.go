// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productdom "wingx/internal/domain/product"
)

const productsCollection = "products"

// ProductRepositoryFS is the Firestore implementation of product.Repository.
// Raw documents go through the strict record parser; a malformed document is
// an error, never a half-empty product.
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) productsCol() *firestore.CollectionRef {
	return r.Client.Collection(productsCollection)
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrInvalidID
	}

	snap, err := r.productsCol().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, fmt.Errorf("product get %s: %w", id, err)
	}

	p, err := productdom.ParseRecord(snap.Ref.ID, snap.Data())
	if err != nil {
		return productdom.Product{}, fmt.Errorf("product parse %s: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepositoryFS) ListFeatured(ctx context.Context) ([]productdom.Product, error) {
	it := r.productsCol().Where("featured", "==", true).Documents(ctx)
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("product list featured: %w", err)
		}
		p, perr := productdom.ParseRecord(snap.Ref.ID, snap.Data())
		if perr != nil {
			// One bad document must not blank the whole rail.
			log.Printf("[product] skipping malformed doc %s: %v", snap.Ref.ID, perr)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
