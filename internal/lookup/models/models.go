package models

import (
	"encoding/json"
	"fmt"
)

// Domain identifies what kind of value is being looked up. It selects the
// validation rule, the cache partition, and the result shape.
type Domain string

const (
	DomainPhone      Domain = "phone"
	DomainVehicle    Domain = "vehicle"
	DomainNationalID Domain = "national_id"
	DomainCard       Domain = "card"
)

// Domains lists every domain in presentation order.
var Domains = []Domain{DomainPhone, DomainVehicle, DomainNationalID, DomainCard}

// ParseDomain validates a domain name from the outside world.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown lookup domain %q", s)
	}
	return d, nil
}

func (d Domain) IsValid() bool {
	switch d {
	case DomainPhone, DomainVehicle, DomainNationalID, DomainCard:
		return true
	}
	return false
}

func (d Domain) String() string {
	return string(d)
}

// Label is the human-facing name recorded in the search history.
func (d Domain) Label() string {
	switch d {
	case DomainPhone:
		return "Phone"
	case DomainVehicle:
		return "Vehicle"
	case DomainNationalID:
		return "National ID"
	case DomainCard:
		return "Card"
	}
	return string(d)
}

// CachePartition is the storage key holding this domain's cache entries.
func (d Domain) CachePartition() string {
	return string(d) + "_lookup_cache"
}

// Result is a successful lookup handed to the presentation layer.
type Result struct {
	Domain  Domain          `json:"domain"`
	Key     string          `json:"key"`
	Payload json.RawMessage `json:"payload"`
	Cached  bool            `json:"cached"`
}

// RenderKind enumerates presenter states.
type RenderKind string

const (
	RenderLoading RenderKind = "loading"
	RenderResult  RenderKind = "result"
	RenderError   RenderKind = "error"
)

// Render is one presenter state change.
type Render struct {
	Kind    RenderKind      `json:"state"`
	Domain  Domain          `json:"domain"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
}
