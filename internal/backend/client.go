// Package backend is the HTTP client for the bakery backend, the external
// collaborator that owns products, orders and reviews. The client performs no
// retries; any non-2xx response is returned as an error for the caller to
// surface.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goldcrust/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the bakery backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New creates a backend client. The transport is instrumented so trace
// context propagates to the collaborator when a tracer is configured.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// ListProducts fetches the catalog. An empty category means all categories.
func (c *Client) ListProducts(ctx context.Context, category string, availableOnly bool) ([]models.Product, error) {
	q := url.Values{}
	q.Set("available_only", fmt.Sprintf("%t", availableOnly))
	if category != "" {
		q.Set("category", category)
	}

	var products []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListReviews fetches reviews, optionally restricted to the approved subset
// or to a single product.
func (c *Client) ListReviews(ctx context.Context, approvedOnly bool, productID string) ([]models.Review, error) {
	q := url.Values{}
	q.Set("approved_only", fmt.Sprintf("%t", approvedOnly))
	if productID != "" {
		q.Set("product_id", productID)
	}

	var reviews []models.Review
	if err := c.doJSON(ctx, http.MethodGet, "/api/reviews", q, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview creates a new review; the backend stores it unapproved.
func (c *Client) SubmitReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.doJSON(ctx, http.MethodPost, "/api/reviews", nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ApproveReview flips a review's approval flag on.
func (c *Client) ApproveReview(ctx context.Context, id string) (*models.Review, error) {
	body := map[string]bool{"approved": true}

	var review models.Review
	if err := c.doJSON(ctx, http.MethodPut, "/api/reviews/"+url.PathEscape(id)+"/approve", nil, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/reviews/"+url.PathEscape(id), nil, nil, nil)
}

// ListOrders fetches orders, optionally filtered by status.
func (c *Client) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": []string{status}}
	}

	var orders []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits a new order and returns the stored order with its id
// and initial status.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DashboardStats fetches the admin dashboard aggregate counts.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/analytics/dashboard", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// doJSON executes one request against the backend, encoding body (if any) and
// decoding the response into out (if non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("backend request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}
	return nil
}
