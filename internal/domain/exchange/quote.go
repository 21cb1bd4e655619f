// internal/domain/exchange/quote.go
package exchange

import (
	"fmt"
	"strings"
	"time"
)

// DefaultRate is the hardcoded Bs/USD fallback when neither the provider nor
// the cache can produce a value.
const DefaultRate = 50.0

// CacheTTL is the maximum age at which a cached rate is served without a
// network call.
const CacheTTL = time.Hour

// Source tells callers how trustworthy the current quote is. The rate service
// never fails; it degrades through these sources instead.
type Source string

const (
	SourceLive    Source = "live"
	SourceCache   Source = "cache"   // fresh cache, within TTL
	SourceStale   Source = "stale"   // expired cache served after a fetch failure
	SourceDefault Source = "default" // hardcoded fallback
)

// Quote is a Bs/USD conversion rate with its provenance.
type Quote struct {
	Rate      float64   `json:"rate"`
	FetchedAt time.Time `json:"fetchedAt"`
	Source    Source    `json:"source"`
}

// Fresh reports whether the quote is still within the cache TTL.
func (q Quote) Fresh(now time.Time) bool {
	if q.Rate <= 0 || q.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(q.FetchedAt) < CacheTTL
}

// ConvertToBs converts a USD amount with this quote. A zero/negative rate
// yields 0, never a division artifact.
func (q Quote) ConvertToBs(usd float64) float64 {
	if q.Rate <= 0 {
		return 0
	}
	return usd * q.Rate
}

// FormatBs renders the converted amount with es-VE grouping:
// thousands separated by '.', decimals by ',', two decimal places.
func (q Quote) FormatBs(usd float64) string {
	return "Bs " + formatVE(q.ConvertToBs(usd))
}

func formatVE(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
