package schedule

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithURL points the client at a different solver endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger for debug-level request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}
