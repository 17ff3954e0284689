// Package ports declares what the lookup service needs from the outside:
// a cache, a history log, an upstream fetcher, and somewhere to render.
package ports

import (
	"context"
	"encoding/json"

	"lookupdesk/internal/gateway"
	"lookupdesk/internal/lookup/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks CacheStore,HistoryLog,Fetcher,Presenter

// CacheStore holds successful payloads per domain and key.
type CacheStore interface {
	Get(ctx context.Context, domain models.Domain, key string) (json.RawMessage, bool, error)
	Put(ctx context.Context, domain models.Domain, key string, payload json.RawMessage) error
}

// HistoryLog records lookups that produced a result.
type HistoryLog interface {
	Append(ctx context.Context, domain models.Domain, displayValue string) error
}

// Fetcher retrieves a remote payload, falling back to relayURL.
type Fetcher interface {
	Fetch(ctx context.Context, url, relayURL string) (*gateway.Response, error)
}

// Presenter receives the state changes of one lookup.
// RenderLoading precedes RenderResult or RenderError, except on validation
// failures, which render the error directly.
type Presenter interface {
	RenderLoading(domain models.Domain)
	RenderResult(domain models.Domain, payload json.RawMessage)
	RenderError(domain models.Domain, message string)
}
