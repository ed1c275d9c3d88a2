// Package cache stores rendered calculation results so identical loan terms
// are served without rerunning the amortization engine.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/amortize/pkg/constants"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Config selects and configures a cache backend.
type Config struct {
	Backend string        `yaml:"backend"` // memory, redis, none
	Address string        `yaml:"address,omitempty"`
	TTL     time.Duration `yaml:"ttl,omitempty"`
	Prefix  string        `yaml:"prefix,omitempty"`
}

// DefaultConfig returns an in-memory cache configuration.
func DefaultConfig() Config {
	return Config{
		Backend: constants.CacheBackendMemory,
		TTL:     constants.DefaultCacheTTL,
		Prefix:  constants.DefaultCachePrefix,
	}
}

// New builds the backend named by cfg.Backend. An empty backend means memory.
func New(cfg Config) (Cache, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = constants.DefaultCacheTTL
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", constants.CacheBackendMemory:
		return NewMemoryCache(cfg.TTL), nil
	case constants.CacheBackendRedis:
		if strings.TrimSpace(cfg.Address) == "" {
			return nil, fmt.Errorf("redis cache requires an address")
		}
		return NewRedisCache(cfg.Address, cfg.Prefix, cfg.TTL), nil
	case constants.CacheBackendNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }
func (Nop) Close() error                                      { return nil }
