// Package history keeps the bounded, newest-first log of past lookups.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"lookupdesk/internal/kvstore"
	"lookupdesk/internal/lookup/models"
	"lookupdesk/internal/platform/metrics"
	"lookupdesk/pkg/requestcontext"
)

// DefaultLimit caps the number of retained entries.
const DefaultLimit = 20

// Log persists history entries as one JSON array under models.HistoryStorageKey.
type Log struct {
	kv      kvstore.Store
	limit   int
	logger  *slog.Logger
	metrics *metrics.Metrics
	mu      sync.Mutex
}

type Option func(*Log)

func WithLimit(limit int) Option {
	return func(l *Log) {
		if limit > 0 {
			l.limit = limit
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Log) {
		l.metrics = m
	}
}

func New(kv kvstore.Store, opts ...Option) *Log {
	l := &Log{
		kv:     kv,
		limit:  DefaultLimit,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records a lookup at the front of the log and truncates the tail.
func (l *Log) Append(ctx context.Context, domain models.Domain, displayValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A failed read leaves the stored log untouched; only corrupt data resets it.
	entries, err := l.load(ctx)
	if err != nil {
		return err
	}

	next := make([]models.HistoryEntry, 0, min(len(entries)+1, l.limit))
	next = append(next, models.HistoryEntry{
		Type:       domain.Label(),
		Value:      displayValue,
		RecordedAt: requestcontext.Now(ctx).Format(models.HistoryTimeLayout),
	})
	for _, e := range entries {
		if len(next) == l.limit {
			break
		}
		next = append(next, e)
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.kv.Put(ctx, models.HistoryStorageKey, string(raw)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	l.metrics.SetHistoryEntries(len(next))
	return nil
}

// Load returns the log newest first; an absent log is empty.
func (l *Log) Load(ctx context.Context) ([]models.HistoryEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

// Clear deletes the persisted log. Callers confirm with the user first.
func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.kv.Delete(ctx, models.HistoryStorageKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	l.metrics.SetHistoryEntries(0)
	l.logger.InfoContext(ctx, "search history cleared")
	return nil
}

func (l *Log) load(ctx context.Context) ([]models.HistoryEntry, error) {
	raw, err := l.kv.Get(ctx, models.HistoryStorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		l.logger.WarnContext(ctx, "discarding corrupt history", "error", err)
		return nil, nil
	}
	return entries, nil
}
