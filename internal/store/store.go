// Package store provides key-value persistence backends.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/rumo/internal/model"
)

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// KV is a string key-value store with synchronous reads and writes.
// Get reports ok=false for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open opens the backend selected by cfg.
func Open(ctx context.Context, cfg model.StoreConfig) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite store path is empty")
		}
		st, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return st, nil
	case BackendRedis:
		st, err := OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return st, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
