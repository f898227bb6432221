// Package shopify pages through the Admin REST orders endpoint.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tomnomnom/linkheader"

	"seroter.com/ordersheet/config"
	"seroter.com/ordersheet/model"
)

const (
	tokenHeader  = "X-Shopify-Access-Token"
	maxErrorBody = 512
)

type Client struct {
	baseURL    string
	apiVersion string
	token      string
	pageSize   int
	client     *http.Client
}

func NewClient(cfg config.ShopifyConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		token:      cfg.AccessToken,
		pageSize:   cfg.PageSize,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch returns every order created at or after cursor, newest first, in
// the order the pages arrived. An empty cursor fetches everything.
//
// Errors are logged and end the walk; whatever was collected up to that
// point is returned.
func (c *Client) Fetch(ctx context.Context, cursor string) []model.Order {
	var orders []model.Order

	next := c.firstPage(cursor)
	for page := 1; next != ""; page++ {
		batch, link, err := c.getPage(ctx, next)
		if err != nil {
			slog.Error("error fetching orders", "page", page, "fetched", len(orders), "error", err)
			break
		}
		orders = append(orders, batch...)
		slog.Debug("fetched orders page", "page", page, "count", len(batch))
		next = link
	}

	return orders
}

func (c *Client) firstPage(cursor string) string {
	q := url.Values{}
	q.Set("status", "any")
	q.Set("limit", fmt.Sprint(c.pageSize))
	q.Set("order", "created_at desc")
	if cursor != "" {
		q.Set("created_at_min", cursor)
	}
	return fmt.Sprintf("%s/admin/api/%s/orders.json?%s", c.baseURL, c.apiVersion, q.Encode())
}

// getPage fetches one page and returns its orders plus the rel="next" URL,
// which is empty on the last page.
func (c *Client) getPage(ctx context.Context, pageURL string) ([]model.Order, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, "", fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}

	var page model.Orders
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", fmt.Errorf("decode response: %w", err)
	}

	return page.Orders, nextLink(resp.Header.Get("Link")), nil
}

func nextLink(header string) string {
	if header == "" {
		return ""
	}
	for _, l := range linkheader.Parse(header).FilterByRel("next") {
		return l.URL
	}
	return ""
}
