package ristretto

import (
	"errors"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/webstore/backend"
)

type Backend struct {
	c *rc.Cache
}

var (
	_ backend.Backend = (*Backend)(nil)
	_ backend.Closer  = (*Backend)(nil)
)

type Config struct {
	NumCounters int64
	MaxCost     int64 // total bytes of values held
	BufferItems int64
	Metrics     bool
}

// DefaultConfig sizes the cache for ~64MiB of values.
func DefaultConfig() Config {
	return Config{NumCounters: 1e6, MaxCost: 64 << 20, BufferItems: 64}
}

func New(cfg Config) (*Backend, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Backend{c: c}, nil
}

func (b *Backend) GetItem(key string) (string, bool, error) {
	v, ok := b.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		// self-heal: drop unexpected entry shape
		b.c.Del(key)
		return "", false, nil
	}
	return s, true, nil
}

// SetItem blocks until the write is applied so a following GetItem sees it.
// Cost is the value length. Set only buffers the item; the admission policy
// may still drop it (cost above MaxCost, TinyLFU), so the write is read back
// and reported as ErrRejected when it did not stick.
func (b *Backend) SetItem(key, value string) error {
	if !b.c.Set(key, value, int64(len(value))) {
		return backend.ErrRejected
	}
	b.c.Wait()
	if got, ok := b.c.Get(key); !ok || got != value {
		return backend.ErrRejected
	}
	return nil
}

func (b *Backend) RemoveItem(key string) error {
	b.c.Del(key)
	return nil
}

func (b *Backend) Close() error {
	b.c.Wait()
	b.c.Close()
	return nil
}

// Metrics exposes ristretto's counters (nil unless Config.Metrics).
func (b *Backend) Metrics() *rc.Metrics { return b.c.Metrics }
