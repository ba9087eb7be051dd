// Package invoicing implements the invoicing-provider port against a
// Zoho-style REST API: OAuth2 refresh-token exchange for bearer tokens, an
// organization-id header on every call, and hosted payment URLs on unpaid
// invoices. The provider owns contacts, invoices and payment collection;
// nothing here computes money beyond relaying line items.
package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
)

const orgIDHeader = "X-com-zoho-invoice-organizationid"

// Config carries the provider credentials and endpoints.
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	RefreshToken string
	OrgID        string
}

// Client calls the invoicing provider with automatic token refresh.
type Client struct {
	baseURL    string
	orgID      string
	httpClient *http.Client
}

var _ ports.InvoicingProvider = (*Client)(nil)

// NewClient creates an invoicing client. The underlying http.Client obtains
// and refreshes bearer tokens from the refresh token transparently.
func NewClient(ctx context.Context, cfg Config) *Client {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	return &Client{
		baseURL:    cfg.BaseURL,
		orgID:      cfg.OrgID,
		httpClient: oauth2.NewClient(ctx, ts),
	}
}

// newWithHTTPClient is used by tests to bypass the OAuth transport.
func newWithHTTPClient(baseURL, orgID string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, orgID: orgID, httpClient: hc}
}

type contactPayload struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
}

type invoicePayload struct {
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerID    string          `json:"customer_id"`
	Status        string          `json:"status"`
	CurrencyCode  string          `json:"currency_code"`
	Total         decimal.Decimal `json:"total"`
	Balance       decimal.Decimal `json:"balance"`
	DueDate       string          `json:"due_date"`
	InvoiceURL    string          `json:"invoice_url"`
}

func (p *invoicePayload) toDomain() *domain.Invoice {
	due, _ := time.Parse("2006-01-02", p.DueDate)
	inv := &domain.Invoice{
		InvoiceID:     p.InvoiceID,
		InvoiceNumber: p.InvoiceNumber,
		ContactID:     p.CustomerID,
		Status:        domain.InvoiceStatus(p.Status),
		CurrencyCode:  p.CurrencyCode,
		Total:         p.Total,
		Balance:       p.Balance,
		DueDate:       due,
	}
	if inv.Status != domain.InvoicePaid && inv.Status != domain.InvoiceVoid {
		inv.PaymentURL = p.InvoiceURL
	}
	return inv
}

// EnsureContact finds a provider contact by email or creates one.
func (c *Client) EnsureContact(ctx context.Context, name, email, company string) (string, error) {
	var listResp struct {
		Contacts []contactPayload `json:"contacts"`
	}
	q := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodGet, "/contacts?"+q.Encode(), nil, &listResp); err != nil {
		return "", fmt.Errorf("failed to search contacts: %w", err)
	}
	if len(listResp.Contacts) > 0 {
		return listResp.Contacts[0].ContactID, nil
	}

	var createResp struct {
		Contact contactPayload `json:"contact"`
	}
	body := map[string]string{
		"contact_name": name,
		"company_name": company,
		"email":        email,
	}
	if err := c.do(ctx, http.MethodPost, "/contacts", body, &createResp); err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}
	if createResp.Contact.ContactID == "" {
		return "", fmt.Errorf("%w: contact created without an id", apperrors.ErrUpstream)
	}
	return createResp.Contact.ContactID, nil
}

// CreateInvoice creates an invoice for the contact and returns it.
func (c *Client) CreateInvoice(ctx context.Context, contactID, currency string, items []domain.InvoiceLineItem) (*domain.Invoice, error) {
	lines := make([]map[string]any, len(items))
	for i, item := range items {
		lines[i] = map[string]any{
			"name":     item.Name,
			"quantity": item.Quantity,
			"rate":     item.UnitPrice,
		}
	}
	body := map[string]any{
		"customer_id":   contactID,
		"currency_code": currency,
		"line_items":    lines,
	}

	var resp struct {
		Invoice invoicePayload `json:"invoice"`
	}
	if err := c.do(ctx, http.MethodPost, "/invoices", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	if resp.Invoice.InvoiceID == "" {
		return nil, fmt.Errorf("%w: invoice created without an id", apperrors.ErrUpstream)
	}
	return resp.Invoice.toDomain(), nil
}

// GetInvoice fetches a single invoice.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var resp struct {
		Invoice invoicePayload `json:"invoice"`
	}
	if err := c.do(ctx, http.MethodGet, "/invoices/"+url.PathEscape(invoiceID), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", invoiceID, err)
	}
	return resp.Invoice.toDomain(), nil
}

// ListInvoices fetches all invoices for the contact.
func (c *Client) ListInvoices(ctx context.Context, contactID string) ([]domain.Invoice, error) {
	var resp struct {
		Invoices []invoicePayload `json:"invoices"`
	}
	q := url.Values{"customer_id": {contactID}}
	if err := c.do(ctx, http.MethodGet, "/invoices?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	out := make([]domain.Invoice, len(resp.Invoices))
	for i := range resp.Invoices {
		out[i] = *resp.Invoices[i].toDomain()
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(orgIDHeader, c.orgID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %s: %s", apperrors.ErrUpstream, resp.Status, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrUpstream, err)
		}
	}
	return nil
}
