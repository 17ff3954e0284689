// Package cache stores successful lookup payloads per domain with a TTL.
//
// Each domain owns one partition persisted as a single JSON object under the
// domain's partition key:
//
//	{"<key>": {"data": <payload>, "timestamp": <unix millis>}}
//
// Expired entries are removed lazily on read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"lookupdesk/internal/kvstore"
	"lookupdesk/internal/lookup/models"
	"lookupdesk/internal/platform/metrics"
	"lookupdesk/pkg/requestcontext"
)

// DefaultTTL is how long a cached payload stays valid.
const DefaultTTL = 24 * time.Hour

type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

type partition map[string]entry

// Store is the lookup cache backed by a kvstore.Store.
type Store struct {
	kv      kvstore.Store
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Partitions are rewritten whole, so read-modify-write must not interleave.
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New creates a cache store over kv.
func New(kv kvstore.Store, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached payload for key when it is younger than the TTL.
// An expired entry is deleted and the partition persisted before reporting a miss.
func (s *Store) Get(ctx context.Context, domain models.Domain, key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx, domain)
	if err != nil {
		return nil, false, err
	}
	e, ok := p[key]
	if !ok {
		s.metrics.IncrementCacheResult(domain.String(), "miss")
		return nil, false, nil
	}

	storedAt := time.UnixMilli(e.Timestamp)
	if requestcontext.Now(ctx).Sub(storedAt) < s.ttl {
		s.metrics.IncrementCacheResult(domain.String(), "hit")
		return e.Data, true, nil
	}

	s.metrics.IncrementCacheResult(domain.String(), "expired")
	delete(p, key)
	if err := s.save(ctx, domain, p); err != nil {
		return nil, false, fmt.Errorf("evict expired %s entry: %w", domain, err)
	}
	return nil, false, nil
}

// Put upserts payload under key, stamped with the request clock. A failed read
// of the partition aborts the write so existing entries survive.
func (s *Store) Put(ctx context.Context, domain models.Domain, key string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx, domain)
	if err != nil {
		return err
	}
	p[key] = entry{Data: payload, Timestamp: requestcontext.Now(ctx).UnixMilli()}
	return s.save(ctx, domain, p)
}

func (s *Store) load(ctx context.Context, domain models.Domain) (partition, error) {
	raw, err := s.kv.Get(ctx, domain.CachePartition())
	if errors.Is(err, kvstore.ErrNotFound) {
		return partition{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s cache: %w", domain, err)
	}

	p := partition{}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt cache partition",
			"domain", domain.String(),
			"error", err,
		)
		return partition{}, nil
	}
	return p, nil
}

func (s *Store) save(ctx context.Context, domain models.Domain, p partition) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode %s cache: %w", domain, err)
	}
	if err := s.kv.Put(ctx, domain.CachePartition(), string(raw)); err != nil {
		return fmt.Errorf("write %s cache: %w", domain, err)
	}
	return nil
}
