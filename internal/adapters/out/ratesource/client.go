// internal/adapters/out/ratesource/client.go
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the official Bs/USD rate from the external provider
// (ve.dolarapi.com shape: {"promedio": <number>, ...}).
type Client struct {
	url  string
	http *http.Client
}

func New(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type rateResponse struct {
	Promedio float64 `json:"promedio"`
}

// FetchRate performs one GET against the provider. Non-2xx statuses and
// malformed bodies are errors; the caller's fallback chain absorbs them.
func (c *Client) FetchRate(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("ratesource: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ratesource: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("ratesource: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("ratesource: read body: %w", err)
	}

	var rr rateResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return 0, fmt.Errorf("ratesource: decode body: %w", err)
	}
	if rr.Promedio <= 0 {
		return 0, fmt.Errorf("ratesource: invalid rate %v", rr.Promedio)
	}
	return rr.Promedio, nil
}
