//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"github.com/totegamma/unifedi/core"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 8 << 20
)

var tracer = otel.Tracer("client")

// Request is a single call against a flavor's HTTP API.
type Request struct {
	Method     string
	URL        string
	Header     http.Header
	Body       []byte
	Idempotent bool // POSTs get an Idempotency-Key
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is the transport the OAuth flows and callers run on.
type Client interface {
	Do(ctx context.Context, req Request) (Response, error)
}

type client struct {
	http        *http.Client
	userAgent   string
	maxBodySize int64
}

type Option func(*client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		c.http.Timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *client) {
		c.userAgent = userAgent
	}
}

// WithMaxBodySize caps the response body; larger bodies fail with HTTPError.
func WithMaxBodySize(n int64) Option {
	return func(c *client) {
		c.maxBodySize = n
	}
}

// WithHTTPClient replaces the underlying client. Its transport is wrapped
// with otelhttp.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		transport := hc.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		wrapped := *hc
		wrapped.Transport = otelhttp.NewTransport(transport)
		c.http = &wrapped
	}
}

func NewClient(opts ...Option) Client {
	c := &client{
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultTimeout,
		},
		userAgent:   "unifedi",
		maxBodySize: maxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req. Non-2xx responses and transport failures are returned as
// HTTPError; the response body is still returned for the former.
func (c *client) Do(ctx context.Context, req Request) (Response, error) {
	ctx, span := tracer.Start(ctx, "Client.Do")
	defer span.End()

	span.SetAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL),
	)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		span.RecordError(err)
		return Response{}, core.NewOtherError("invalid request", errors.WithStack(err))
	}

	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Idempotent && req.Method == http.MethodPost && httpReq.Header.Get("Idempotency-Key") == "" {
		httpReq.Header.Set("Idempotency-Key", xid.New().String())
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Response{}, core.NewHTTPError(0, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		span.RecordError(err)
		return Response{}, core.NewHTTPError(resp.StatusCode, "", errors.WithStack(err))
	}
	if int64(len(respBody)) > c.maxBodySize {
		err := core.NewHTTPError(resp.StatusCode, "", errors.Errorf("response body exceeds %d bytes", c.maxBodySize))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Response{}, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	result := Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := core.NewHTTPError(resp.StatusCode, string(respBody), nil)
		span.RecordError(err)
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		return result, err
	}

	return result, nil
}

// AuthorizationHeader formats the Authorization header value for token.
// Token types that name a flavor mean Bearer on every flavor known today.
func AuthorizationHeader(token core.TokenData) string {
	scheme := "Bearer"
	switch strings.ToLower(token.TokenType) {
	case "", "bearer":
	default:
		if _, err := core.ParseFlavor(strings.ToLower(token.TokenType)); err != nil {
			scheme = token.TokenType
		}
	}
	return scheme + " " + token.AccessToken
}
