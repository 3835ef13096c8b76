package api

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Client provides access to the spot and futures listing endpoints.
type Client struct {
	spotURL    string
	futuresURL string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new listing client.
func NewClient(spotURL, futuresURL string, opts ...ClientOption) *Client {
	c := &Client{
		spotURL:    spotURL,
		futuresURL: futuresURL,
		httpClient: NewHTTPClient(30*time.Second, 50),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewHTTPClient returns an HTTP client whose transport never holds more than
// maxConns connections to a single host.
func NewHTTPClient(timeout time.Duration, maxConns int) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.MaxConnsPerHost = maxConns
	transport.MaxIdleConns = maxConns
	transport.MaxIdleConnsPerHost = maxConns

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
