package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
)

var (
	errTrailingData = errors.New("unexpected data after JSON body")
	errNullBody     = errors.New("response body is null")
)

// Fetcher retrieves the inventory of a case
type Fetcher interface {
	FetchInventory(ctx context.Context, caseID string) ([]domain.InventoryItem, error)
}

// Client handles communication with the inventory endpoint
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// NewClient creates a new inventory client.
// A nil httpClient gets a plain client with no timeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", domain.ErrInvalidInput, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: base url must be absolute, got %q", domain.ErrInvalidInput, baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: u,
		client:  httpClient,
	}, nil
}

// InventoryURL returns the request URL for a case: <base>?case=<caseID>.
// Query parameters already present on the base URL are kept.
func (c *Client) InventoryURL(caseID string) string {
	u := *c.baseURL
	q := u.Query()
	q.Set(domain.QueryParamCase, caseID)
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchInventory performs one GET for the case and decodes the inventory.
// Non-2xx responses return *domain.HTTPStatusError without reading the body.
func (c *Client) FetchInventory(ctx context.Context, caseID string) ([]domain.InventoryItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.InventoryURL(caseID), nil)
	if err != nil {
		return nil, domain.NewLoadError(domain.ErrTransport, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewLoadError(domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.HTTPStatusError{StatusCode: resp.StatusCode}
	}

	var payload *domain.InventoryResponse
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&payload); err != nil {
		return nil, domain.NewLoadError(domain.ErrDecode, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, domain.NewLoadError(domain.ErrDecode, errTrailingData)
	}
	if payload == nil {
		return nil, domain.NewLoadError(domain.ErrDecode, errNullBody)
	}

	if payload.Inventory == nil {
		return []domain.InventoryItem{}, nil
	}
	return payload.Inventory, nil
}

// CheckHealth probes the inventory endpoint with a HEAD request to the base
// URL. Any answer below 500 counts as reachable; the endpoint is not
// required to support HEAD.
func (c *Client) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return domain.NewLoadError(domain.ErrTransport, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.NewLoadError(domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &domain.HTTPStatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
