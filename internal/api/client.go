// Package api implements the chat completion client.
package api

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/textagent/internal/errors"
	"github.com/diogo/textagent/internal/models"
)

// DefaultTimeout bounds every outbound request. A stalled call surfaces as
// a TimeoutError instead of blocking the process indefinitely.
const DefaultTimeout = 30 * time.Second

// Client talks to an Anthropic-compatible messages endpoint behind a proxy
// base URL. It performs exactly one outbound call per Complete invocation
// and never retries internally.
type Client struct {
	httpClient  tls_client.HttpClient
	apiKey      string
	baseURL     string
	model       models.Preset
	maxTokens   int
	temperature float64
	timeout     time.Duration
	mu          sync.RWMutex
	closed      bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL overrides the default proxy endpoint
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithModel sets the default model preset for the client
func WithModel(model models.Preset) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithMaxTokens sets the default response token budget
func WithMaxTokens(maxTokens int) ClientOption {
	return func(c *Client) {
		c.maxTokens = maxTokens
	}
}

// WithTemperature sets the default sampling temperature
func WithTemperature(temperature float64) ClientOption {
	return func(c *Client) {
		c.temperature = temperature
	}
}

// WithTimeout sets the per-request deadline
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient injects a custom HTTP client. Used by tests to intercept
// requests without a network.
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client. The API key is required; everything else
// has defaults.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.NewConfigErrorWithCause("no API key provided", apierrors.ErrNoAPIKey)
	}

	client := &Client{
		apiKey:      apiKey,
		baseURL:     models.DefaultBaseURL,
		model:       models.DefaultPreset,
		maxTokens:   models.DefaultMaxTokens,
		temperature: models.DefaultTemperature,
		timeout:     DefaultTimeout,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Close marks the client as closed. Subsequent Complete calls fail.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// GetModel returns the default model preset
func (c *Client) GetModel() models.Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel sets the default model preset
func (c *Client) SetModel(model models.Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// Timeout returns the per-request deadline
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

// endpoint returns the full messages endpoint URL
func (c *Client) endpoint() string {
	return c.BaseURL() + models.MessagesPath
}
