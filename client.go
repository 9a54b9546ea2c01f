package schedule

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Client submits solve payloads to the schedule-solver service.
type Client struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient constructs a solver client for DefaultSolveURL unless
// overridden by options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:        DefaultSolveURL,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// URL reports the endpoint the client submits to.
func (c *Client) URL() string {
	return c.url
}

// Solve POSTs the payload verbatim and returns the response body.
//
// On a transport failure the error wraps ErrUnreachable. On a 4xx/5xx
// status the error wraps ErrSolveFailed and the body returned alongside it
// holds whatever the server sent, so callers can surface it.
func (c *Client) Solve(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", ContentTypeJSON)

	c.log.Debug().Str("url", c.url).Int("payload_bytes", len(payload)).Msg("submitting solve request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().Str("status", resp.Status).Int("response_bytes", len(body)).Msg("solver responded")

	if resp.StatusCode >= http.StatusBadRequest {
		return body, fmt.Errorf("%w: server returned %s", ErrSolveFailed, resp.Status)
	}

	return body, nil
}
