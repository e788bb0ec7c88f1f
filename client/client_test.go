package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/totegamma/unifedi/core"
	"github.com/totegamma/unifedi/internal/testutil"
)

func TestDo(t *testing.T) {
	var received *http.Request
	var receivedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r
		receivedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	c := NewClient(WithUserAgent("unifedi/test"))
	resp, err := c.Do(context.Background(), Request{
		Method:     http.MethodPost,
		URL:        server.URL + "/api/v1/apps",
		Header:     http.Header{"Authorization": {"Bearer token"}},
		Body:       []byte(`{"client_name":"unifedi"}`),
		Idempotent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"id":"1"}`, string(resp.Body))

	if assert.NotNil(t, received) {
		assert.Equal(t, "/api/v1/apps", received.URL.Path)
		assert.Equal(t, "application/json", received.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token", received.Header.Get("Authorization"))
		assert.Equal(t, "unifedi/test", received.Header.Get("User-Agent"))
		_, err := xid.FromString(received.Header.Get("Idempotency-Key"))
		assert.NoError(t, err)
		assert.Equal(t, `{"client_name":"unifedi"}`, string(receivedBody))
	}
}

func TestDoKeepsIdempotencyKey(t *testing.T) {
	var key string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("Idempotency-Key")
	}))
	defer server.Close()

	_, err := NewClient().Do(context.Background(), Request{
		Method:     http.MethodPost,
		URL:        server.URL,
		Header:     http.Header{"Idempotency-Key": {"retry-1"}},
		Idempotent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "retry-1", key)

	_, err = NewClient().Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, Idempotent: true})
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestDoHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"Validation failed"}`))
	}))
	defer server.Close()

	resp, err := NewClient().Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL})
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, core.KindHTTP, e.Kind)
		assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode)
		assert.Equal(t, `{"error":"Validation failed"}`, e.Fragment)
	}
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := NewClient(WithTimeout(10*time.Millisecond)).Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL})
	assert.True(t, core.IsHTTPError(err))

	_, err = NewClient().Do(context.Background(), Request{Method: "BAD METHOD", URL: server.URL})
	assert.Equal(t, core.KindOther, core.KindOf(err))
}

func TestDoBodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 1024)))
	}))
	defer server.Close()

	_, err := NewClient(WithMaxBodySize(1023)).Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL})
	var e *core.Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, core.KindHTTP, e.Kind)
		assert.Equal(t, http.StatusOK, e.StatusCode)
		assert.Contains(t, e.Error(), "exceeds 1023 bytes")
	}

	resp, err := NewClient(WithMaxBodySize(1024)).Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	assert.Len(t, resp.Body, 1024)
}

func TestDoTracing(t *testing.T) {
	exporter := testutil.SetupMockTraceProvider()
	otel.SetTextMapPropagator(propagation.TraceContext{})

	var traceparent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("traceparent")
	}))
	defer server.Close()

	_, err := NewClient(WithHTTPClient(&http.Client{})).Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)

	assert.NotEmpty(t, traceparent)
	assert.Contains(t, testutil.SpanNames(exporter), "Client.Do")
}

func TestAuthorizationHeader(t *testing.T) {
	tests := map[string]string{
		"Bearer":   "Bearer abc",
		"bearer":   "Bearer abc",
		"":         "Bearer abc",
		"Firefish": "Bearer abc",
		"Pleroma":  "Bearer abc",
		"MAC":      "MAC abc",
	}
	for tokenType, expected := range tests {
		assert.Equal(t, expected, AuthorizationHeader(core.TokenData{AccessToken: "abc", TokenType: tokenType}), tokenType)
	}
}
