package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFresh(t *testing.T) {
	now := time.Now()

	assert.True(t, Quote{Rate: 36.5, FetchedAt: now.Add(-30 * time.Minute)}.Fresh(now))
	assert.False(t, Quote{Rate: 36.5, FetchedAt: now.Add(-2 * time.Hour)}.Fresh(now))
	assert.False(t, Quote{Rate: 0, FetchedAt: now}.Fresh(now))
	assert.False(t, Quote{Rate: 36.5}.Fresh(now))
}

func TestConvertToBs(t *testing.T) {
	q := Quote{Rate: 36.5}
	assert.InDelta(t, 365.0, q.ConvertToBs(10), 1e-9)

	// conversion is consistent with the active rate
	assert.InDelta(t, 10.0, q.ConvertToBs(10)/q.Rate, 1e-9)

	// zero rate never divides or explodes
	assert.Zero(t, Quote{}.ConvertToBs(100))
	assert.Zero(t, Quote{Rate: -1}.ConvertToBs(100))
}

func TestFormatBs(t *testing.T) {
	q := Quote{Rate: 50}
	assert.Equal(t, "Bs 1.234,50", q.FormatBs(24.69))
	assert.Equal(t, "Bs 200,00", q.FormatBs(4))
	assert.Equal(t, "Bs 10.000.000,00", q.FormatBs(200000))
	assert.Equal(t, "Bs 0,00", Quote{}.FormatBs(100))
}
