package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		p, err := ParseRecord("p1", map[string]any{
			"name":       "Crop Top Aura",
			"price":      float64(18),
			"imageUrl":   "https://img/aura.jpg",
			"sizes":      []any{"S", "M", "L"},
			"colors":     []any{"Negro", "Blanco"},
			"categories": []any{"tops"},
			"featured":   true,
			"unknown":    "dropped silently? no: just ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "Crop Top Aura", p.Name)
		assert.Equal(t, 18.0, p.Price)
		assert.Equal(t, []string{"S", "M", "L"}, p.Sizes)
		assert.Equal(t, "tops", p.Category)
		assert.True(t, p.HasSizes())
		assert.True(t, p.HasColors())
	})

	t.Run("single image backfills images slice", func(t *testing.T) {
		p, err := ParseRecord("p2", map[string]any{
			"name":     "Leggings",
			"price":    float64(25),
			"imageUrl": "https://img/leg.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://img/leg.jpg"}, p.Images)
		assert.False(t, p.HasSizes())
	})

	t.Run("missing name fails descriptively", func(t *testing.T) {
		_, err := ParseRecord("p3", map[string]any{"price": float64(10)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "p3")
		assert.Contains(t, err.Error(), "missing name")
	})

	t.Run("non-numeric price fails", func(t *testing.T) {
		_, err := ParseRecord("p4", map[string]any{"name": "X", "price": "18"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-numeric price")
	})

	t.Run("negative price fails", func(t *testing.T) {
		_, err := ParseRecord("p5", map[string]any{"name": "X", "price": float64(-1)})
		require.Error(t, err)
	})

	t.Run("int price accepted", func(t *testing.T) {
		p, err := ParseRecord("p6", map[string]any{"name": "X", "price": int64(10)})
		require.NoError(t, err)
		assert.Equal(t, 10.0, p.Price)
	})
}
