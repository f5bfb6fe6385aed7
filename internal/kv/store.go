// Package kv provides the persisted key-value primitive used for UI state:
// completed-lesson sets and the theme preference.
package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable is returned when the store is disabled or unreachable.
var ErrUnavailable = errors.New("kv store unavailable")

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverDisabled = "disabled"
)

// Options selects and configures a Store implementation.
type Options struct {
	Driver    string
	Path      string // sqlite database file
	RedisAddr string
	Prefix    string // redis key prefix
}

// Open creates the store named by opts.Driver. The returned close func
// releases any underlying connection.
func Open(ctx context.Context, opts Options) (Store, func() error, error) {
	noop := func() error { return nil }
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), noop, nil
	case DriverDisabled:
		return Disabled{}, noop, nil
	case DriverSQLite:
		s, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case DriverRedis:
		s, err := OpenRedis(ctx, opts.RedisAddr, opts.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}

// Memory is an in-process Store.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Disabled is a Store whose every operation fails with ErrUnavailable,
// like browser storage that has been turned off.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrUnavailable
}

func (Disabled) Set(context.Context, string, string) error {
	return ErrUnavailable
}
