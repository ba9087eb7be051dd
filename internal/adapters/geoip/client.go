// Package geoip implements the geo-IP lookup port against an ipapi-style
// JSON endpoint. Calls are proxied server-side so no provider key or CORS
// surface is exposed to the browser.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
)

// Client calls the geo-IP provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.GeoLocator = (*Client)(nil)

// NewClient creates a geo-IP client. A zero timeout defaults to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type locationPayload struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Currency    string `json:"currency"`
}

// Locate resolves ip to a location. The provider's currency field is
// returned as-is; it is the caller's job to override it with the business's
// own country→currency table.
func (c *Client) Locate(ctx context.Context, ip string) (domain.Location, error) {
	endpoint := fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("failed to build geoip request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geoip request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geoip provider returned status %s", resp.Status)
	}

	var payload locationPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Location{}, fmt.Errorf("failed to decode geoip response: %w", err)
	}
	if payload.CountryCode == "" {
		return domain.Location{}, fmt.Errorf("geoip response missing country_code")
	}

	return domain.Location{
		CountryCode: payload.CountryCode,
		CountryName: payload.CountryName,
		Currency:    payload.Currency,
	}, nil
}
