// Package apiclient is the typed Go client for the coach-app API. It
// pairs read watchers (snapshot state plus automatic re-fetch through
// a refresh.Store) with mutation helpers that report pending state,
// surface toast notifications and invalidate the stale keys.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"peakform/coach-app/pkg/refresh"
)

// Fixed human-facing messages; the server's {error} body takes
// precedence for mutations when present.
const (
	fallbackErrorMessage = "Une erreur est survenue"
	readErrorMessage     = "Erreur lors du chargement des données"
)

// Notifier receives user-facing notifications (the toast surface).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// APIError is a non-2xx response, carrying the server's error message
// when one could be parsed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to a coach-app server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier
	store      *refresh.Store

	mu    sync.Mutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNotifier sets the notification sink. Defaults to NopNotifier.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithStore sets the refresh store shared with the watchers. Defaults
// to a fresh private store.
func WithStore(s *refresh.Store) Option {
	return func(c *Client) { c.store = s }
}

// WithToken sets the initial bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		notifier:   NopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = refresh.NewStore()
	}
	return c
}

// Store exposes the refresh store so callers can share it or notify
// keys themselves.
func (c *Client) Store() *refresh.Store { return c.store }

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// do issues a JSON request. Non-2xx responses come back as *APIError
// with the parsed {error} message, or the fixed fallback.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallbackErrorMessage}
		var payload struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
