package api

// Package api implements the typed REST client for the events backend.
// Authenticated calls go through a bearer-injecting transport that also
// enforces the global 401 policy via the OnUnauthorized hook.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/corpevents/eventdesk/internal/errors"
)

// maxErrorBody bounds how much of an error response we read for the envelope.
const maxErrorBody = 64 << 10

// TokenFunc supplies the current bearer credential, or "" when anonymous.
// It is consulted on every request so a rotated credential takes effect
// without rebuilding the client.
type TokenFunc func(ctx context.Context) string

// Options groups dependencies for NewClient.
type Options struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000/api/v1".
	BaseURL string
	// Token supplies the bearer credential for authenticated calls.
	Token TokenFunc
	// OnUnauthorized fires once per 401 response from any authenticated
	// call. The session controller uses it to invalidate the session.
	OnUnauthorized func()
	// HTTPClient overrides the underlying client (optional).
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is not provided.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client is a typed client for the events backend REST surface.
type Client struct {
	baseURL string
	// authed carries the bearer transport; plain is used for the
	// unauthenticated endpoints (credential exchange, account signup).
	authed *http.Client
	plain  *http.Client
	logger *slog.Logger
}

// NewClient builds a backend client. Callers should pass a validated config.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	plain := opts.HTTPClient
	if plain == nil {
		plain = &http.Client{Timeout: timeout}
	}

	authed := &http.Client{
		Timeout: plain.Timeout,
		Transport: &bearerTransport{
			next:           transportOrDefault(plain.Transport),
			token:          opts.Token,
			onUnauthorized: opts.OnUnauthorized,
		},
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		authed:  authed,
		plain:   plain,
		logger:  logger,
	}, nil
}

func transportOrDefault(rt http.RoundTripper) http.RoundTripper {
	if rt != nil {
		return rt
	}
	return http.DefaultTransport
}

// bearerTransport injects the Authorization header and applies the global
// 401 policy. It never retries; failure semantics are the caller's.
type bearerTransport struct {
	next           http.RoundTripper
	token          TokenFunc
	onUnauthorized func()
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != nil {
		if tok := t.token(req.Context()); tok != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}

	return resp, nil
}

// requestParams groups inputs for do.
type requestParams struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   any
	// plain selects the unauthenticated client.
	plain bool
}

// do executes a request and decodes a JSON response into out (when non-nil).
// Non-2xx responses become AppErrors carrying the server detail verbatim.
func (c *Client) do(ctx context.Context, p requestParams, out any) error {
	u := c.baseURL + p.path
	if len(p.query) > 0 {
		u += "?" + p.query.Encode()
	}

	var bodyReader io.Reader
	if p.body != nil {
		encoded, err := json.Marshal(p.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if p.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range p.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	hc := c.authed
	if p.plain {
		hc = c.plain
	}

	resp, err := hc.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed", "method", p.method, "path", p.path, "error", err)
		return apperrors.MapTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WarnContext(ctx, "request rejected", "method", p.method, "path", p.path, "status", resp.StatusCode)
		return apperrors.MapHTTPError(resp.StatusCode, body)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, requestParams{method: http.MethodGet, path: path, query: query}, out)
}
