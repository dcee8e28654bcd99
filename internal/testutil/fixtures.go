// Package testutil provides fake JSON-RPC endpoints for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// StaticServer starts an HTTP server that answers every request with the
// given status and body. The server is closed when the test finishes.
func StaticServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// CaptureServer starts an HTTP server that decodes each request body into
// dst and passes the request to inspect (which may be nil). It always
// answers {"jsonrpc":"2.0","result":"ok","id":1}.
func CaptureServer(t *testing.T, dst *map[string]any, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		if dst != nil {
			if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
				t.Errorf("capture server: decoding request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":"ok","id":1}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// MethodServer starts an HTTP server that answers based on the "method"
// field of the JSON-RPC request, falling back to a method-not-found error.
// Responses are raw JSON strings keyed by method name.
func MethodServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		method, _ := req["method"].(string)
		w.Header().Set("Content-Type", "application/json")
		if body, ok := responses[method]; ok {
			_, _ = w.Write([]byte(body))
			return
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32601,"message":"Method not found"},"id":null}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}
