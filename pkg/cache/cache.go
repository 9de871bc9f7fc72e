// Package cache stores rendered modifier artifacts.
//
// Entries are opaque byte slices keyed by strings produced by a [Keyer].
// Backends:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI)
//   - [RedisCache]: a shared Redis instance (server)
//   - [NullCache]: stores nothing
//
// A Get that finds nothing returns hit=false and a nil error; errors are
// reserved for backend failures.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// SymbolKey returns the key for the artifacts of one modifier computation.
	SymbolKey(opts SymbolKeyOpts) string
}

// SymbolKeyOpts holds everything a modifier computation depends on.
type SymbolKeyOpts struct {
	Affiliation string         `json:"affiliation"`
	Dimension   string         `json:"dimension"`
	BaseBBox    [4]float64     `json:"base_bbox"`
	HasBase     bool           `json:"has_base"`
	BBox        [4]float64     `json:"bbox"`
	Options     map[string]any `json:"options"`
	Formats     []string       `json:"formats"`
	StyleHash   string         `json:"style_hash"`
}

// DefaultKeyer hashes the key options into "symbol:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SymbolKey implements Keyer.
func (DefaultKeyer) SymbolKey(opts SymbolKeyOpts) string {
	return hashKey("symbol", opts)
}
