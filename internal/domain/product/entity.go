// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
)

// Product is a catalog item as seen by the order subsystem: read-only,
// referenced by value. Cart and order lines snapshot the fields they need
// and never dereference live product state afterwards.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

var (
	ErrInvalidID    = errors.New("product: invalid id")
	ErrInvalidName  = errors.New("product: invalid name")
	ErrInvalidPrice = errors.New("product: invalid price")
)

func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// HasSizes reports whether the product defines size variants.
func (p Product) HasSizes() bool { return len(p.Sizes) > 0 }

// HasColors reports whether the product defines color variants.
func (p Product) HasColors() bool { return len(p.Colors) > 0 }
