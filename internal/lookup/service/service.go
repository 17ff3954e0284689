// Package service orchestrates one lookup: validate, consult the cache, fetch
// or analyze on a miss, decide whether anything was found, then record it.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"lookupdesk/internal/card"
	"lookupdesk/internal/gateway"
	"lookupdesk/internal/lookup/models"
	"lookupdesk/internal/lookup/ports"
	"lookupdesk/internal/lookup/validate"
	"lookupdesk/internal/platform/metrics"
	dErrors "lookupdesk/pkg/domain-errors"
)

// Endpoints are the remote API base URLs. The normalized key is appended
// verbatim. An empty URL disables that domain.
type Endpoints struct {
	Phone      string
	Vehicle    string
	NationalID string
	Relay      string
}

func (e Endpoints) base(domain models.Domain) string {
	switch domain {
	case models.DomainPhone:
		return e.Phone
	case models.DomainVehicle:
		return e.Vehicle
	case models.DomainNationalID:
		return e.NationalID
	}
	return ""
}

// Service runs lookups for all four domains.
type Service struct {
	cache     ports.CacheStore
	history   ports.HistoryLog
	fetcher   ports.Fetcher
	endpoints Endpoints
	analyze   func(string) card.Profile
	logger    *slog.Logger
	metrics   *metrics.Metrics
	inflight  singleflight.Group
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithEndpoints(e Endpoints) Option {
	return func(s *Service) {
		s.endpoints = e
	}
}

// WithCardAnalyzer replaces card.Analyze.
func WithCardAnalyzer(analyze func(string) card.Profile) Option {
	return func(s *Service) {
		if analyze != nil {
			s.analyze = analyze
		}
	}
}

func New(cache ports.CacheStore, history ports.HistoryLog, fetcher ports.Fetcher, opts ...Option) (*Service, error) {
	if cache == nil {
		return nil, errors.New("cache store is required")
	}
	if history == nil {
		return nil, errors.New("history log is required")
	}
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	s := &Service{
		cache:   cache,
		history: history,
		fetcher: fetcher,
		analyze: card.Analyze,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Lookup validates input, resolves it, and reports every state change to p.
// Concurrent lookups of the same key share one cache read and fetch; each
// caller still gets its own renders and history entry.
func (s *Service) Lookup(ctx context.Context, domain models.Domain, input string, p ports.Presenter) (*models.Result, error) {
	key, err := validate.Normalize(domain, input)
	if err != nil {
		s.metrics.IncrementLookup(domain.String(), "invalid")
		p.RenderError(domain, dErrors.Message(err))
		return nil, err
	}

	p.RenderLoading(domain)

	v, err, shared := s.share(ctx, domain, key)
	if err != nil {
		s.metrics.IncrementLookup(domain.String(), string(dErrors.CodeOf(err)))
		s.logger.InfoContext(ctx, "lookup failed",
			"domain", domain.String(),
			"code", string(dErrors.CodeOf(err)),
			"error", err,
		)
		p.RenderError(domain, dErrors.Message(err))
		return nil, err
	}
	result := *v.(*models.Result)

	outcome := "fetched"
	if result.Cached {
		outcome = "cached"
	}
	s.metrics.IncrementLookup(domain.String(), outcome)
	s.logger.InfoContext(ctx, "lookup resolved",
		"domain", domain.String(),
		"cached", result.Cached,
		"shared", shared,
	)

	if err := s.history.Append(ctx, domain, DisplayValue(domain, key)); err != nil {
		s.logger.WarnContext(ctx, "history append failed",
			"domain", domain.String(),
			"error", err,
		)
	}

	p.RenderResult(domain, result.Payload)
	return &result, nil
}

// share runs resolve once per domain and key across concurrent callers. The
// shared call is detached from any one caller's cancellation and bounded by
// the fetcher's own deadline; each caller stops waiting when its ctx ends.
func (s *Service) share(ctx context.Context, domain models.Domain, key string) (any, error, bool) {
	ch := s.inflight.DoChan(domain.String()+":"+key, func() (any, error) {
		return s.resolve(context.WithoutCancel(ctx), domain, key)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err, res.Shared
	case <-ctx.Done():
		return nil, dErrors.New(dErrors.CodeNetwork, networkPrefix(domain)+ctx.Err().Error()), false
	}
}

func (s *Service) resolve(ctx context.Context, domain models.Domain, key string) (*models.Result, error) {
	payload, ok, err := s.cache.Get(ctx, domain, key)
	if err != nil {
		s.logger.WarnContext(ctx, "cache read failed, treating as miss",
			"domain", domain.String(),
			"error", err,
		)
	}
	if err == nil && ok {
		return &models.Result{Domain: domain, Key: key, Payload: payload, Cached: true}, nil
	}

	if domain == models.DomainCard {
		payload, err = s.analyzeCard(key)
	} else {
		payload, err = s.fetch(ctx, domain, key)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, domain, key, payload); err != nil {
		s.logger.WarnContext(ctx, "cache write failed",
			"domain", domain.String(),
			"error", err,
		)
	}
	return &models.Result{Domain: domain, Key: key, Payload: payload}, nil
}

func (s *Service) fetch(ctx context.Context, domain models.Domain, key string) (json.RawMessage, error) {
	base := s.endpoints.base(domain)
	if base == "" {
		return nil, dErrors.New(dErrors.CodeUnavailable, fmt.Sprintf("%s lookup is not configured", domain.Label()))
	}

	resp, err := s.fetcher.Fetch(ctx, base+key, s.endpoints.Relay)
	if err != nil {
		s.logger.WarnContext(ctx, "upstream fetch failed",
			"domain", domain.String(),
			"category", string(gateway.GetCategory(err)),
		)
		return nil, dErrors.New(dErrors.CodeNetwork, networkPrefix(domain)+err.Error())
	}

	var body any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, dErrors.New(dErrors.CodeNetwork, networkPrefix(domain)+err.Error())
	}
	if !found(domain, body) {
		return nil, dErrors.New(dErrors.CodeNotFound, notFoundMessage(domain, body))
	}
	return json.RawMessage(resp.Body), nil
}

func (s *Service) analyzeCard(number string) (payload json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = dErrors.New(dErrors.CodeAnalysis, fmt.Sprintf("Error analyzing card: %v", r))
		}
	}()

	raw, err := json.Marshal(s.analyze(number))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeAnalysis, "Error analyzing card: "+err.Error())
	}
	return raw, nil
}

func networkPrefix(domain models.Domain) string {
	switch domain {
	case models.DomainPhone:
		return "Error fetching phone data: "
	case models.DomainVehicle:
		return "Error fetching vehicle data: "
	case models.DomainNationalID:
		return "Error fetching national ID data: "
	}
	return "Error fetching data: "
}

// DisplayValue is the form of key recorded in history. National IDs and card
// numbers keep only their last four digits.
func DisplayValue(domain models.Domain, key string) string {
	switch domain {
	case models.DomainNationalID, models.DomainCard:
		return card.MaskAllButLast4(key)
	}
	return key
}
