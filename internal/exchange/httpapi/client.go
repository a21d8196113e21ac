// Package httpapi implements the exchange boundary against the brdg.live
// order API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brdg-live/tickerchart/internal/exchange"
	platformhttp "github.com/brdg-live/tickerchart/internal/platform/http"
)

// Client talks to the order API over HTTP. It implements exchange.Exchange.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *platformhttp.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new Client
type ClientOptions struct {
	BaseURL         string
	APIKey          string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

// NewClient creates a new order API client
func NewClient(options ClientOptions) *Client {
	return &Client{
		baseURL: options.BaseURL,
		apiKey:  options.APIKey,
		httpClient: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:         options.RequestTimeout,
			RequestsPerSec:  options.RequestsPerSec,
			MaxRetryTimeout: options.MaxRetryTimeout,
		}),
		logger: log.With().Str("component", "exchange_client").Logger(),
	}
}

type orderRequest struct {
	Ticker string  `json:"ticker"`
	Amount float64 `json:"amount"`
}

type apiError struct {
	Message string `json:"message"`
}

type holdingsResponse struct {
	Ticker string   `json:"ticker"`
	Amount *float64 `json:"amount"`
}

// Buy submits a buy order for the ticker.
func (c *Client) Buy(ctx context.Context, ticker string, amount float64) error {
	return c.placeOrder(ctx, "buy", ticker, amount)
}

// Sell submits a sell order for the ticker.
func (c *Client) Sell(ctx context.Context, ticker string, amount float64) error {
	return c.placeOrder(ctx, "sell", ticker, amount)
}

// placeOrder posts the order exactly once. Orders are never retried: a retry
// after an ambiguous failure could double-fill.
func (c *Client) placeOrder(ctx context.Context, side, ticker string, amount float64) error {
	body, err := json.Marshal(orderRequest{Ticker: ticker, Amount: amount})
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	endpoint := fmt.Sprintf("%s/orders/%s", c.baseURL, side)
	c.logger.Debug().Str("url", endpoint).Float64("amount", amount).Msg("Placing order")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	if err := c.httpClient.Limiter.Wait(ctx); err != nil {
		return err
	}
	resp, err := c.httpClient.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return c.rejection(resp)
}

// rejection converts a non-2xx order response into an error, keeping the
// API's own message when the body carries one.
func (c *Client) rejection(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return &exchange.Error{Message: apiErr.Message}
	}

	c.logger.Error().Int("status", resp.StatusCode).Str("response", string(raw)).Msg("Order API error")
	return fmt.Errorf("order API error: status %d", resp.StatusCode)
}

// Holdings fetches the current holdings for the ticker. A null amount in the
// response means the API does not know the ticker yet.
func (c *Client) Holdings(ctx context.Context, ticker string) (exchange.Holdings, error) {
	endpoint := fmt.Sprintf("%s/holdings?ticker=%s", c.baseURL, url.QueryEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return exchange.Holdings{}, fmt.Errorf("creating request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return exchange.Holdings{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return exchange.Holdings{}, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Str("response", string(raw)).Msg("Holdings API error")
		return exchange.Holdings{}, fmt.Errorf("holdings API error: status %d", resp.StatusCode)
	}

	var data holdingsResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return exchange.Holdings{}, fmt.Errorf("parsing JSON: %w", err)
	}
	if data.Amount == nil {
		return exchange.Holdings{}, nil
	}
	return exchange.Holdings{Amount: *data.Amount, Known: true}, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
