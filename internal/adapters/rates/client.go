// Package rates implements the exchange-rate port against an
// openexchangerates-style JSON endpoint returning {"rates": {code: number}}
// with USD as the base currency.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Client calls the exchange-rate provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ ports.RateSource = (*Client)(nil)

// NewClient creates a rates client. A zero timeout defaults to 10s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ratesPayload struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRates fetches the full table of foreign units per 1 USD. A response
// without a rates field is an error; validation of individual rates is the
// caller's concern.
func (c *Client) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	endpoint, err := url.Parse(c.baseURL + "/latest.json")
	if err != nil {
		return nil, fmt.Errorf("invalid rates base URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("base", "USD")
	if c.apiKey != "" {
		q.Set("app_id", c.apiKey)
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates provider returned status %s", resp.Status)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rates response missing rates field")
	}

	return payload.Rates, nil
}
