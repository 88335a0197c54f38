// Package gateway is the sole outbound network access point of the client.
// It attaches the persisted credential to every request, translates HTTP and
// transport failures into a stable error taxonomy, and reacts to revoked
// credentials globally, so individual call sites never duplicate auth or
// error handling.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/navbug/compintel-cli/internal/client/repositories/credential"
	"github.com/navbug/compintel-cli/internal/logging"
)

// DefaultTimeout bounds every request. Exceeding it is indistinguishable
// from a connection failure: both surface as KindNetwork.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response we read when looking for
// a backend-provided message.
const maxErrorBody = 64 << 10

// Gateway dispatches requests against a single REST backend. It is stateless
// aside from reading and deleting the shared persisted credential.
type Gateway struct {
	baseURL        string
	httpClient     *http.Client
	creds          credential.Store
	onUnauthorized func()
	log            logging.Logger
	do             doFunc
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithOnUnauthorized registers a hook invoked whenever any response comes
// back 401, after the persisted credential has been cleared. This is how a
// revoked credential forces the rest of the application back to the login
// entry point, regardless of which call site hit it.
func WithOnUnauthorized(fn func()) Option {
	return func(g *Gateway) { g.onUnauthorized = fn }
}

// WithLogger attaches a structured logger.
func WithLogger(log logging.Logger) Option {
	return func(g *Gateway) { g.log = log }
}

// WithHTTPClient replaces the default 30s-timeout client. Mostly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

// New builds a Gateway for baseURL. The middleware chain is composed here so
// its ordering is visible in one place: request id first, then credential
// attachment, then the raw dispatch.
func New(baseURL string, creds credential.Store, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		creds:      creds,
		log:        logging.Nop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.do = withRequestID(withBearerToken(creds, g.httpClient.Do))

	return g
}

// Get issues GET path and decodes the 2xx response body into out (skipped
// when out is nil).
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.send(ctx, http.MethodGet, path, nil, out)
}

// Post issues POST path with body JSON-encoded.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.send(ctx, http.MethodPost, path, body, out)
}

// Put issues PUT path with body JSON-encoded.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.send(ctx, http.MethodPut, path, body, out)
}

// Delete issues DELETE path. The response body is discarded.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.send(ctx, http.MethodDelete, path, nil, nil)
}

func (g *Gateway) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed before a response arrived", "method", method, "path", path, "error", err)
		return &Error{
			Kind:    KindNetwork,
			Message: "Network error. Please check your connection.",
			cause:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return g.reject(ctx, method, path, resp)
}

// reject maps a non-2xx response to the error taxonomy and performs the
// global 401 side effect.
func (g *Gateway) reject(ctx context.Context, method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	status := resp.StatusCode

	g.log.Debug(ctx, "request rejected", "method", method, "path", path, "status", status)

	switch {
	case status == http.StatusUnauthorized:
		// The credential is gone as far as the backend is concerned. Clear it
		// and notify before the caller even sees the error; both effects
		// happen whether or not the caller handles the rejection.
		if err := g.creds.Delete(ctx); err != nil {
			g.log.Error(ctx, "failed to clear credential after 401", "error", err)
		}
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return &Error{
			Kind:    KindUnauthorized,
			Status:  status,
			Message: backendMessage(raw, "Session expired. Please login again."),
		}

	case status == http.StatusForbidden:
		return &Error{
			Kind:    KindForbidden,
			Status:  status,
			Message: "You do not have permission to perform this action.",
		}

	case status == http.StatusNotFound:
		return &Error{
			Kind:    KindNotFound,
			Status:  status,
			Message: "Resource not found.",
		}

	case status >= 500:
		// Never surface raw 5xx bodies.
		return &Error{
			Kind:    KindServer,
			Status:  status,
			Message: "Server error. Please try again later.",
		}

	default:
		return &Error{
			Kind:    KindClient,
			Status:  status,
			Message: backendMessage(raw, "An unexpected error occurred."),
		}
	}
}

// backendMessage pulls the backend's {"message": ...} field out of an error
// body, falling back when absent or unparsable.
func backendMessage(raw []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}
