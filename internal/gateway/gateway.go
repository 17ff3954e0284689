// Package gateway fetches JSON from remote lookup APIs, retrying once through
// a relay when the direct request fails.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"lookupdesk/internal/platform/metrics"
)

// DefaultTimeout bounds the direct and relay attempts together.
const DefaultTimeout = 15 * time.Second

const maxBodyBytes = 10 << 20

// ErrResponseTooLarge is reported when a body exceeds the 10 MiB read limit.
var ErrResponseTooLarge = errors.New("response too large")

// Route names the path a request took.
type Route string

const (
	RouteDirect Route = "direct"
	RouteRelay  Route = "relay"
)

// Attempt records one request made by Fetch.
type Attempt struct {
	Route   Route
	URL     string
	Status  int
	Err     error
	Elapsed time.Duration
}

// Response is a successful fetch: the winning route, its body, and every
// attempt made on the way.
type Response struct {
	Route    Route
	Status   int
	Body     []byte
	Attempts []Attempt
}

// Gateway performs the two-step fetch.
type Gateway struct {
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Gateway)

func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.client = client
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gateway) {
		g.metrics = m
	}
}

// WithTracerProvider sets where fetch spans are recorded. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Gateway) {
		if tp != nil {
			g.tracer = tp.Tracer(tracerName)
		}
	}
}

const tracerName = "lookupdesk/internal/gateway"

func New(opts ...Option) *Gateway {
	g := &Gateway{
		client:  &http.Client{},
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fetch GETs url directly and, on any failure, makes exactly one more GET to
// relayURL+url. Both attempts share one deadline.
func (g *Gateway) Fetch(ctx context.Context, url, relayURL string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := g.tracer.Start(ctx, "gateway.Fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var attempts []Attempt

	direct := g.attempt(ctx, RouteDirect, url)
	attempts = append(attempts, direct.Attempt)
	if direct.Err == nil {
		span.SetAttributes(attribute.String("lookup.route", string(RouteDirect)))
		return &Response{Route: RouteDirect, Status: direct.Status, Body: direct.body, Attempts: attempts}, nil
	}

	g.logger.WarnContext(ctx, "direct fetch failed, trying relay",
		"category", string(GetCategory(direct.Err)),
		"error", direct.Err,
	)

	relay := g.attempt(ctx, RouteRelay, relayURL+url)
	attempts = append(attempts, relay.Attempt)
	if relay.Err == nil {
		span.SetAttributes(attribute.String("lookup.route", string(RouteRelay)))
		return &Response{Route: RouteRelay, Status: relay.Status, Body: relay.body, Attempts: attempts}, nil
	}

	err := &FetchError{Direct: direct.Err, Relay: relay.Err, Attempts: attempts}
	span.RecordError(err)
	span.SetStatus(codes.Error, "both routes failed")
	g.logger.ErrorContext(ctx, "fetch failed on both routes",
		"direct_error", direct.Err,
		"relay_error", relay.Err,
	)
	return nil, err
}

type attemptResult struct {
	Attempt
	body []byte
}

func (g *Gateway) attempt(ctx context.Context, route Route, url string) attemptResult {
	ctx, span := g.tracer.Start(ctx, "gateway.attempt",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("lookup.route", string(route))),
	)
	defer span.End()

	start := time.Now()
	res := attemptResult{Attempt: Attempt{Route: route, URL: url}}
	res.body, res.Status, res.Err = g.do(ctx, route, url)
	res.Elapsed = time.Since(start)

	outcome := "ok"
	if res.Err != nil {
		outcome = string(GetCategory(res.Err))
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, outcome)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", res.Status))
	g.metrics.ObserveFetchAttempt(string(route), outcome, res.Elapsed)
	return res
}

func (g *Gateway) do(ctx context.Context, route Route, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &AttemptError{Route: route, Category: ErrorInternal, Underlying: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, &AttemptError{Route: route, Category: categorize(err), Underlying: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, resp.StatusCode, &AttemptError{Route: route, Category: ErrorProviderOutage, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		category := categorize(err)
		if category == ErrorProviderOutage {
			category = ErrorBadData
		}
		return nil, resp.StatusCode, &AttemptError{Route: route, Category: category, Underlying: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return nil, resp.StatusCode, &AttemptError{Route: route, Category: ErrorBadData, Underlying: ErrResponseTooLarge}
	}
	return body, resp.StatusCode, nil
}
