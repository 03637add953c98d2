package backend

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

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rfhold/partpick/internal/catalog"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidBaseURL    = errors.New("invalid backend URL")
)

const (
	// DefaultTimeout bounds every request when no timeout is configured
	DefaultTimeout = 10 * time.Second

	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 8 << 20

	tracerName      = "github.com/rfhold/partpick/internal/backend"
	requestIDHeader = "X-Request-Id"
)

// ClientOptions configures a Client
type ClientOptions struct {
	// Timeout applies to each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// Transport is the underlying round tripper; nil uses http.DefaultTransport
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client talks to the catalog and evaluation services over HTTP.
// It implements Backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tracer  trace.Tracer
	logger  *slog.Logger
}

var _ Backend = (*Client)(nil)

// NewClient creates a client rooted at baseURL (e.g. "http://localhost:8000")
func NewClient(baseURL string, opts ClientOptions) (*Client, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidBaseURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https: %q", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host: %q", ErrInvalidBaseURL, raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// BaseURL returns the normalized service root
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// ListComponents fetches GET /api/components, optionally filtered by type
func (c *Client) ListComponents(ctx context.Context, t catalog.ComponentType) (items []catalog.Component, err error) {
	ctx, span := c.tracer.Start(ctx, "backend.ListComponents",
		trace.WithAttributes(attribute.String("component.type", string(t))))
	defer func() { endSpan(span, err) }()

	var query url.Values
	if t != AllComponents {
		query = url.Values{"type": []string{string(t)}}
	}

	body, err := c.do(ctx, http.MethodGet, c.endpoint("/api/components", query), nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: component list is not an array", ErrMalformedResponse)
	}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if items == nil {
		items = []catalog.Component{}
	}
	span.SetAttributes(attribute.Int("component.count", len(items)))
	return items, nil
}

// Seed calls POST /api/seed
func (c *Client) Seed(ctx context.Context) (err error) {
	ctx, span := c.tracer.Start(ctx, "backend.Seed")
	defer func() { endSpan(span, err) }()

	_, err = c.do(ctx, http.MethodPost, c.endpoint("/api/seed", nil), nil)
	return err
}

// evaluateRequest is the POST /api/evaluate body
type evaluateRequest struct {
	Selections map[catalog.ComponentType]string `json:"selections"`
}

// evaluateResponse mirrors EvaluationResult with presence tracking for is_valid
type evaluateResponse struct {
	IsValid         *bool    `json:"is_valid"`
	Issues          []string `json:"issues"`
	EstimatedPowerW float64  `json:"estimated_power_w"`
	TotalPrice      float64  `json:"total_price"`
}

// Evaluate calls POST /api/evaluate with the selected identifiers
func (c *Client) Evaluate(ctx context.Context, selections map[catalog.ComponentType]string) (result *catalog.EvaluationResult, err error) {
	ctx, span := c.tracer.Start(ctx, "backend.Evaluate",
		trace.WithAttributes(attribute.Int("selection.count", len(selections))))
	defer func() { endSpan(span, err) }()

	if selections == nil {
		selections = map[catalog.ComponentType]string{}
	}
	payload, err := json.Marshal(evaluateRequest{Selections: selections})
	if err != nil {
		return nil, fmt.Errorf("encoding evaluate request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.endpoint("/api/evaluate", nil), payload)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: evaluation is not an object", ErrMalformedResponse)
	}
	var resp evaluateResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.IsValid == nil {
		return nil, fmt.Errorf("%w: missing is_valid", ErrMalformedResponse)
	}

	issues := resp.Issues
	if issues == nil {
		issues = []string{}
	}
	span.SetAttributes(attribute.Bool("evaluation.valid", *resp.IsValid))
	return &catalog.EvaluationResult{
		IsValid:         *resp.IsValid,
		Issues:          issues,
		EstimatedPowerW: resp.EstimatedPowerW,
		TotalPrice:      resp.TotalPrice,
	}, nil
}

// do performs a request and returns the body of a 2xx response
func (c *Client) do(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("backend request failed",
			"method", method,
			"url", target,
			"request_id", requestID,
			"error", err)
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s %s: %w", method, target, err)
	}

	c.logger.Debug("backend request",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: %w: %d", method, target, ErrUnexpectedStatus, resp.StatusCode)
	}
	return body, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
