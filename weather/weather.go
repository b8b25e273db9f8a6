// Package weather fetches a one-line weather report used to enrich the
// weather prompt. Failures degrade to an error string at the call site;
// they never propagate as a fault.
package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the wttr.in text endpoint.
const DefaultBaseURL = "https://wttr.in"

// DefaultTimeout bounds the fetch. This is the helper's only temporal
// contract: exceed it and the caller gets an error, not a hang.
const DefaultTimeout = 5 * time.Second

// Client fetches weather one-liners.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the wttr.in endpoint. Tests point this at a
// local httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the one-line report for a city, e.g.
// "Kolkata: ⛅️ +31°C".
func (c *Client) Current(ctx context.Context, city string) (string, error) {
	u := fmt.Sprintf("%s/%s?format=3", c.baseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching weather for %s: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching weather for %s: status %d", city, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("reading weather for %s: %w", city, err)
	}
	return strings.TrimSpace(string(body)), nil
}
