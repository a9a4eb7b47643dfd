package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyResponse reports a 2xx response with no body.
var ErrEmptyResponse = errors.New("ticketmaster: empty response body")

// ErrMalformed marks a response body that could not be decoded as JSON.
var ErrMalformed = errors.New("ticketmaster: malformed response")

// StatusError reports a non-2xx response from the Discovery API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ticketmaster: unexpected status %d", e.Code)
}

// Config holds the fixed search filter used on every ingestion cycle.
type Config struct {
	BaseURL     string
	APIKey      string
	City        string
	CountryCode string
	PageSize    int
}

// Client calls the Ticketmaster Discovery API
type Client struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

// NewClient creates a Discovery API client using the given HTTP client.
func NewClient(cfg Config, httpClient *http.Client, log *zap.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: httpClient,
		log:    log,
	}
}

// NewHTTPClient builds an HTTP client with sane transport limits for
// outbound provider calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

// SearchEvents performs one Discovery API search with the configured
// fixed filter and decodes the result. Errors are classified for the
// caller: *StatusError and ErrEmptyResponse mean the provider was
// unavailable this cycle, ErrMalformed means the body was not JSON.
func (c *Client) SearchEvents(ctx context.Context) (*SearchResponse, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster: invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("apikey", c.cfg.APIKey)
	q.Set("city", c.cfg.City)
	q.Set("size", strconv.Itoa(c.cfg.PageSize))
	q.Set("countryCode", c.cfg.CountryCode)
	u.RawQuery = q.Encode()

	c.log.Info("Calling Ticketmaster", zap.String("url", c.redacted(u.String())))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster: failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &result, nil
}

// redacted strips the API key from a URL before it reaches the logs.
func (c *Client) redacted(u string) string {
	if c.cfg.APIKey == "" {
		return u
	}
	return strings.ReplaceAll(u, c.cfg.APIKey, "API_KEY_REMOVED")
}
