package bigcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/webstore/backend"
)

// entries never age out: webstore has no expiration semantics.
const lifeWindow = 100 * 365 * 24 * time.Hour

type Backend struct {
	c *bc.BigCache
}

var (
	_ backend.Backend = (*Backend)(nil)
	_ backend.Closer  = (*Backend)(nil)
)

// Config sizes the cache. With HardMaxCacheSizeMB set, a full shard makes room
// by silently evicting its oldest entries (FIFO). The entry just written is
// always readable afterwards, but earlier keys may disappear without an error:
// leave the limit at 0 when every stored value must be read back.
type Config struct {
	Shards             int // power of two; 0 = bigcache default (1024)
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Backend, error) {
	conf := bc.DefaultConfig(lifeWindow)
	conf.CleanWindow = 0 // no background sweeper
	conf.Verbose = false
	if cfg.Shards > 0 {
		conf.Shards = cfg.Shards
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, fmt.Errorf("bigcache: %w", err)
	}
	return &Backend{c: c}, nil
}

func (b *Backend) GetItem(key string) (string, bool, error) {
	v, err := b.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func (b *Backend) SetItem(key, value string) error {
	if err := b.c.Set(key, []byte(value)); err != nil {
		// bigcache refuses entries larger than a shard can hold
		return fmt.Errorf("%w: %v", backend.ErrRejected, err)
	}
	return nil
}

func (b *Backend) RemoveItem(key string) error {
	err := b.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (b *Backend) Close() error { return b.c.Close() }

// Len is the number of entries currently held.
func (b *Backend) Len() int { return b.c.Len() }
