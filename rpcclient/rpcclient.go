// Package rpcclient provides the HTTP transport used to dispatch JSON-RPC
// payloads to an endpoint under test.
//
// The client never surfaces network or protocol failures as errors: a
// connection failure, timeout, non-2xx status, or undecodable body is
// converted into a structured failure value {"error": ..., "status": ...}
// so that the comparator always receives two well-formed values. Endpoints
// that disagree on how they fail are exactly the divergence this tool
// exists to surface.
package rpcclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/jherrera-jump/rpcdiff"
)

// DefaultTimeout bounds a single RPC call when the Client does not override it.
const DefaultTimeout = 10 * time.Second

// Client dispatches JSON-RPC payloads over HTTP POST.
type Client struct {
	// HTTPClient is the underlying HTTP client. When nil, a default client
	// is used. Per-call deadlines come from Timeout, not from the client.
	HTTPClient *http.Client
	// Timeout bounds each call. Defaults to DefaultTimeout when zero.
	Timeout time.Duration
	// UserAgent overrides the User-Agent header.
	// Defaults to rpcdiff.UserAgent() if not set.
	UserAgent string
	// Logger is the structured logger for debug output
	Logger rpcdiff.Logger
}

// New creates a new Client with default settings.
func New() *Client {
	return &Client{Timeout: DefaultTimeout}
}

// Call posts the payload to the endpoint and returns the decoded JSON body.
// Transport-level failures are returned as a structured failure value, never
// as an error, so the result is always comparable.
func (c *Client) Call(ctx context.Context, endpoint string, payload any) any {
	body, err := json.Marshal(payload)
	if err != nil {
		return Failure(fmt.Sprintf("encoding request: %v", err), 0)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Failure(fmt.Sprintf("building request: %v", err), 0)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent())

	start := time.Now()
	resp, err := c.client().Do(req)
	if err != nil {
		c.log().Debug("rpc call failed", "endpoint", endpoint, "error", err)
		return Failure(err.Error(), 0)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(fmt.Sprintf("reading response body: %v", err), resp.StatusCode)
	}

	c.log().Debug("rpc call complete",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Failure(string(raw), resp.StatusCode)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Failure(fmt.Sprintf("decoding response body: %v", err), resp.StatusCode)
	}
	return decoded
}

// Failure builds the structured failure value used in place of a response
// body when a call does not yield one.
func Failure(message string, status int) map[string]any {
	return map[string]any{
		"error":  message,
		"status": status,
	}
}

func (c *Client) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return rpcdiff.UserAgent()
}

func (c *Client) log() rpcdiff.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return rpcdiff.NopLogger{}
}
