// internal/domain/product/repository_port.go
package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product: not found")

// Repository is the catalog read port.
type Repository interface {
	GetByID(ctx context.Context, id string) (Product, error)
	ListFeatured(ctx context.Context) ([]Product, error)
}
