package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Storage backends return these
// (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: key does not exist in the store
//   - ErrExpired: cached value is older than its retention window
//   - ErrUnavailable: backend or upstream temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
