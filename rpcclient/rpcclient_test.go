package rpcclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jherrera-jump/rpcdiff/internal/testutil"
)

func TestCallDecodesResponse(t *testing.T) {
	srv := testutil.StaticServer(t, http.StatusOK, `{"jsonrpc":"2.0","result":"ok","id":1}`)

	c := New()
	got := c.Call(context.Background(), srv.URL, map[string]any{"id": 1, "method": "getHealth"})

	want := map[string]any{"jsonrpc": "2.0", "result": "ok", "id": float64(1)}
	assert.Equal(t, want, got)
}

func TestCallSendsJSONRPCRequest(t *testing.T) {
	var gotBody map[string]any
	var gotContentType, gotUserAgent string
	srv := testutil.CaptureServer(t, &gotBody, func(r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
	})

	c := New()
	c.Call(context.Background(), srv.URL, map[string]any{"jsonrpc": "2.0", "id": 1, "method": "getHealth"})

	require.NotNil(t, gotBody)
	assert.Equal(t, "getHealth", gotBody["method"])
	assert.Equal(t, "application/json", gotContentType)
	assert.Contains(t, gotUserAgent, "rpcdiff/")
}

func TestCallNonSuccessStatus(t *testing.T) {
	srv := testutil.StaticServer(t, http.StatusTooManyRequests, `rate limited`)

	c := New()
	got := c.Call(context.Background(), srv.URL, map[string]any{"method": "getHealth"})

	require.IsType(t, map[string]any{}, got)
	failure := got.(map[string]any)
	assert.Equal(t, "rate limited", failure["error"])
	assert.Equal(t, http.StatusTooManyRequests, failure["status"])
}

func TestCallConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.NotFoundHandler())
	deadURL := srv.URL
	srv.Close()

	c := New()
	got := c.Call(context.Background(), deadURL, map[string]any{"method": "getHealth"})

	require.IsType(t, map[string]any{}, got)
	failure := got.(map[string]any)
	assert.NotEmpty(t, failure["error"])
	assert.Equal(t, 0, failure["status"])
}

func TestCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	c := New()
	c.Timeout = 50 * time.Millisecond

	start := time.Now()
	got := c.Call(context.Background(), srv.URL, map[string]any{"method": "getHealth"})
	require.Less(t, time.Since(start), time.Second)

	failure := got.(map[string]any)
	assert.Equal(t, 0, failure["status"])
	assert.NotEmpty(t, failure["error"])
}

func TestCallUndecodableBody(t *testing.T) {
	srv := testutil.StaticServer(t, http.StatusOK, `not json at all`)

	c := New()
	got := c.Call(context.Background(), srv.URL, map[string]any{"method": "getHealth"})

	failure := got.(map[string]any)
	assert.Contains(t, failure["error"], "decoding response body")
	assert.Equal(t, http.StatusOK, failure["status"])
}

func TestCallUnencodablePayload(t *testing.T) {
	c := New()
	got := c.Call(context.Background(), "http://localhost:0", map[string]any{"bad": func() {}})

	failure := got.(map[string]any)
	assert.Contains(t, failure["error"], "encoding request")
	assert.Equal(t, 0, failure["status"])
}

func TestFailureShape(t *testing.T) {
	f := Failure("connection refused", 0)
	assert.Equal(t, map[string]any{"error": "connection refused", "status": 0}, f)
}
