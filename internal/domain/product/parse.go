// internal/domain/product/parse.go
package product

import (
	"fmt"
	"strings"
)

// ParseRecord converts a loosely-typed persisted record into a typed Product.
// Unknown extra fields are dropped, missing optional fields default, and a
// record missing its required fields yields a descriptive error instead of a
// half-populated entity.
func ParseRecord(id string, data map[string]any) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = getString(data, "id")
	}
	if id == "" {
		return Product{}, fmt.Errorf("product record: missing id")
	}
	if data == nil {
		return Product{}, fmt.Errorf("product record %s: empty record", id)
	}

	name := getString(data, "name")
	if name == "" {
		return Product{}, fmt.Errorf("product record %s: missing name", id)
	}

	price, ok := getNumber(data, "price")
	if !ok {
		return Product{}, fmt.Errorf("product record %s: missing or non-numeric price", id)
	}
	if price < 0 {
		return Product{}, fmt.Errorf("product record %s: negative price %v", id, price)
	}

	p := Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: getString(data, "description"),
		ImageURL:    getString(data, "imageUrl"),
		Images:      getStrings(data, "images"),
		Category:    getString(data, "category"),
		Categories:  getStrings(data, "categories"),
		Sizes:       getStrings(data, "sizes"),
		Colors:      getStrings(data, "colors"),
		Gender:      getString(data, "gender"),
		Featured:    getBool(data, "featured"),
	}

	// Single-image records predate the images array.
	if len(p.Images) == 0 && p.ImageURL != "" {
		p.Images = []string{p.ImageURL}
	}
	if p.ImageURL == "" && len(p.Images) > 0 {
		p.ImageURL = p.Images[0]
	}
	if p.Category == "" && len(p.Categories) > 0 {
		p.Category = p.Categories[0]
	}

	if err := p.Validate(); err != nil {
		return Product{}, fmt.Errorf("product record %s: %w", id, err)
	}
	return p, nil
}

func getString(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func getStrings(data map[string]any, key string) []string {
	raw, ok := data[key].([]any)
	if !ok {
		if ss, ok2 := data[key].([]string); ok2 {
			return ss
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func getNumber(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func getBool(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}
