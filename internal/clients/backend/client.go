package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"finance-history/internal/config"
	"finance-history/internal/models"
	"finance-history/internal/services"
)

const transactionsPath = "/api/transactions"

// maxErrorBodyBytes bounds how much of an error response ends up in logs
const maxErrorBodyBytes = 512

var ErrMissingAccessToken = errors.New("no access token to forward to the finance backend")

// authTransport forwards the caller's access token taken from the request context
type authTransport struct {
	base http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok := services.AccessTokenFromContext(req.Context())
	if !ok {
		return nil, ErrMissingAccessToken
	}

	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// Client fetches transaction history from the remote finance backend
type Client struct {
	baseURL        string
	client         *http.Client
	circuitBreaker services.CircuitBreakerInterface
	metrics        services.MetricsRecorderInterface
}

// NewClient builds a backend client. The circuit breaker is required; one per backend.
func NewClient(
	cfg config.BackendConfig,
	circuitBreaker services.CircuitBreakerInterface,
	metrics services.MetricsRecorderInterface,
) *Client {
	return newClient(cfg, http.DefaultTransport, circuitBreaker, metrics)
}

func newClient(
	cfg config.BackendConfig,
	base http.RoundTripper,
	circuitBreaker services.CircuitBreakerInterface,
	metrics services.MetricsRecorderInterface,
) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Transport: &authTransport{base: base},
			Timeout:   cfg.Timeout,
		},
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
	}
}

// FetchTransactions performs exactly one GET per call. An open breaker fails fast without a request.
func (c *Client) FetchTransactions(ctx context.Context, query services.TransactionQuery) ([]models.Transaction, error) {
	if _, ok := services.AccessTokenFromContext(ctx); !ok {
		return nil, fmt.Errorf("%w: %w", services.ErrFetchFailed, ErrMissingAccessToken)
	}

	if c.circuitBreaker.IsOpen() {
		c.recordRequest("circuit_open", 0)
		return nil, services.ErrCircuitBreakerOpen
	}

	req, err := c.buildRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	resp, body, err := c.do(req)
	if err != nil {
		c.circuitBreaker.RecordFailure()
		c.recordRequest("transport_error", time.Since(startTime))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 4xx means the request or the token was rejected, not that the backend is down
		if resp.StatusCode >= 500 {
			c.circuitBreaker.RecordFailure()
		}
		c.recordRequest(statusClass(resp.StatusCode), time.Since(startTime))

		slog.Error("finance backend returned an error",
			"status", resp.StatusCode,
			"url", req.URL.Path,
			"body", truncate(body, maxErrorBodyBytes))

		return nil, fmt.Errorf("%w: backend responded %d", services.ErrFetchFailed, resp.StatusCode)
	}

	var records []models.TransactionRecord
	if err := json.Unmarshal(body, &records); err != nil {
		c.circuitBreaker.RecordFailure()
		c.recordRequest("decode_error", time.Since(startTime))
		return nil, fmt.Errorf("%w: decode response: %w", services.ErrFetchFailed, err)
	}

	c.circuitBreaker.RecordSuccess()
	c.recordRequest(statusClass(resp.StatusCode), time.Since(startTime))

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, record.ToTransaction())
	}

	slog.Debug("fetched transactions from finance backend",
		"user_id", query.UserID,
		"count", len(transactions))

	return transactions, nil
}

func (c *Client) buildRequest(ctx context.Context, query services.TransactionQuery) (*http.Request, error) {
	params := url.Values{}
	params.Set("start_date", query.Start.Format(time.RFC3339))
	params.Set("end_date", query.End.Format(time.RFC3339))
	if query.ParentCategoryID != nil {
		params.Set("parent_category_id", query.ParentCategoryID.String())
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+transactionsPath+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("finance backend request failed",
			"method", req.Method,
			"url", req.URL.Path,
			"error", err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (c *Client) recordRequest(status string, duration time.Duration) {
	c.metrics.IncrementCounter("backend.request", map[string]string{"status": status})
	if duration > 0 {
		c.metrics.RecordProcessingTime("backend.request", duration)
	}
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
