// Package client is a typed HTTP client for the daily ledger API. It
// speaks the same wire shapes the server's handlers produce and turns
// non-2xx responses into errors carrying the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	ledgerapp "github.com/dailyledger/backend/internal/application/ledger"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the ledger API. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// New creates a client against a base URL such as
// "http://localhost:8080/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListCategories fetches the active category list.
func (c *Client) ListCategories(ctx context.Context) ([]ledgerapp.CategoryResponse, error) {
	var out []ledgerapp.CategoryResponse
	err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out)
	return out, err
}

// CreateCategories inserts categories in bulk and returns the full
// stored set.
func (c *Client) CreateCategories(ctx context.Context, reqs []ledgerapp.CreateCategoryRequest) ([]ledgerapp.CategoryResponse, error) {
	var out []ledgerapp.CategoryResponse
	err := c.do(ctx, http.MethodPost, "/categories", nil, reqs, &out)
	return out, err
}

// ListItems fetches a category's item catalog.
func (c *Client) ListItems(ctx context.Context, categoryID int64) ([]ledgerapp.ItemResponse, error) {
	var out []ledgerapp.ItemResponse
	err := c.do(ctx, http.MethodGet, categoryPath(categoryID, "/items"), nil, nil, &out)
	return out, err
}

// CreateItem adds one item to a category.
func (c *Client) CreateItem(ctx context.Context, categoryID int64, req ledgerapp.CreateItemRequest) (*ledgerapp.ItemResponse, error) {
	var out ledgerapp.ItemResponse
	if err := c.do(ctx, http.MethodPut, categoryPath(categoryID, "/items"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransactionFilter narrows a day's transaction listing. Kind is
// "stocks" or "orders", Customer matches the counterparty on the
// filtered side, Date is YYYY-MM-DD and defaults to today when empty.
type TransactionFilter struct {
	Kind     string
	Customer string
	Date     string
}

// ListTransactions fetches one business day of transactions.
func (c *Client) ListTransactions(ctx context.Context, categoryID int64, filter TransactionFilter) ([]ledgerapp.TransactionResponse, error) {
	query := url.Values{}
	if filter.Kind != "" {
		query.Set("type", filter.Kind)
	}
	if filter.Customer != "" {
		query.Set("customer", filter.Customer)
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	var out []ledgerapp.TransactionResponse
	err := c.do(ctx, http.MethodGet, categoryPath(categoryID, "/transactions"), query, nil, &out)
	return out, err
}

// CreateTransaction records a new transaction with its detail lines.
func (c *Client) CreateTransaction(ctx context.Context, categoryID int64, req ledgerapp.CreateTransactionRequest) (*ledgerapp.TransactionResponse, error) {
	var out ledgerapp.TransactionResponse
	if err := c.do(ctx, http.MethodPut, categoryPath(categoryID, "/transactions"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTransaction replaces a transaction's fields and detail set.
func (c *Client) UpdateTransaction(ctx context.Context, categoryID, txID int64, req ledgerapp.UpdateTransactionRequest) (*ledgerapp.TransactionResponse, error) {
	path := categoryPath(categoryID, "/transactions/"+strconv.FormatInt(txID, 10))
	var out ledgerapp.TransactionResponse
	if err := c.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StockSnapshot fetches the per-item net stock for the most recent
// business day before the given date.
func (c *Client) StockSnapshot(ctx context.Context, categoryID int64, date string) ([]ledgerapp.StockQuantityResponse, error) {
	query := url.Values{"category": {strconv.FormatInt(categoryID, 10)}}
	if date != "" {
		query.Set("date", date)
	}
	var out []ledgerapp.StockQuantityResponse
	err := c.do(ctx, http.MethodGet, "/statistics/stock", query, nil, &out)
	return out, err
}

func categoryPath(categoryID int64, suffix string) string {
	return "/categories/" + strconv.FormatInt(categoryID, 10) + suffix
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && json.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
