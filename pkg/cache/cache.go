// Package cache stores compiled circuits and rendered graphs between runs.
//
// # Backends
//
// Every backend implements [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [MemoryCache]: a bounded LRU held in process
//   - [RedisCache]: a shared Redis instance, for batch jobs on several hosts
//   - [NullCache]: stores nothing, for --no-cache
//
// [Open] picks a backend from a [Config].
//
// # Keys
//
// A [Keyer] derives keys from the inputs that determine an output. Compile
// keys hash the QASM source together with a fingerprint of the optimisation
// pipeline, so editing either invalidates the entry. [NewScopedKeyer] prefixes
// every key, which the driver uses to separate entries written by different
// releases.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Config selects and configures a backend.
type Config struct {
	Backend       string
	Dir           string // BackendFile
	RedisURL      string // BackendRedis
	MemoryEntries int    // BackendMemory
}

// Open returns the backend named by cfg.Backend. An empty name selects the
// file backend.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendFile:
		return NewFileCache(cfg.Dir)
	case BackendMemory:
		return NewMemoryCache(cfg.MemoryEntries)
	case BackendRedis:
		return NewRedisCache(ctx, cfg.RedisURL)
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Keyer generates cache keys.
type Keyer interface {
	// CompileKey identifies an optimised circuit.
	CompileKey(source []byte, opts CompileKeyOpts) string

	// GraphKey identifies a rendered Pauli graph.
	GraphKey(source []byte, opts GraphKeyOpts) string
}

// CompileKeyOpts holds the settings that change a compile result.
type CompileKeyOpts struct {
	Pipeline string `json:"pipeline"` // fingerprint of the pass pipeline
}

// GraphKeyOpts holds the settings that change a rendered graph.
type GraphKeyOpts struct {
	Format string `json:"format"`
	Frame  bool   `json:"frame"`
}

// DefaultKeyer hashes sources and options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CompileKey returns "compile:<sha256>".
func (DefaultKeyer) CompileKey(source []byte, opts CompileKeyOpts) string {
	return hashKey("compile", Hash(source), opts)
}

// GraphKey returns "graph:<sha256>".
func (DefaultKeyer) GraphKey(source []byte, opts GraphKeyOpts) string {
	return hashKey("graph", Hash(source), opts)
}
