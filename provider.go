package webstore

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/webstore/backend"
	"github.com/unkn0wn-root/webstore/backend/memory"
	c "github.com/unkn0wn-root/webstore/codec"
	"github.com/unkn0wn-root/webstore/internal/util"
)

// probeKey is written and removed once when a persistent backend is selected.
const probeKey = "__webstore_probe__"

type factory func(env Environment, mem MemoryFactory) (backend.Backend, error)

// factories maps every supported StoreType to its constructor.
var factories = map[StoreType]factory{
	Memory:  func(_ Environment, mem MemoryFactory) (backend.Backend, error) { return mem() },
	Local:   persistent(Local),
	Session: persistent(Session),
}

func persistent(kind StoreType) factory {
	return func(env Environment, _ MemoryFactory) (backend.Backend, error) {
		b, err := env.Storage(kind)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, fmt.Errorf("webstore: environment returned no %s storage", kind)
		}
		return b, nil
	}
}

func defaultMemory() (backend.Backend, error) { return memory.New(), nil }

// Provider reads and writes prefixed, encoded values through the backend
// chosen at construction. It never changes backend afterwards.
type Provider struct {
	kind    StoreType
	prefix  string
	browser bool
	store   backend.Backend
	codec   c.Codec[any]
	log     Logger
}

func newProvider(opts Options) (*Provider, error) {
	kind := coalesce(opts.StoreType, DefaultStoreType)
	build, ok := factories[kind]
	if !ok {
		return nil, &ConfigError{Field: "storeType", Value: string(kind), Err: ErrUnsupportedStoreType}
	}

	p := &Provider{prefix: DefaultPrefix, codec: c.JSON[any]{}, log: loggerOrNop(opts.Logger)}
	if opts.Prefix != nil {
		p.prefix = *opts.Prefix
	}
	if opts.Codec != nil {
		p.codec = opts.Codec
	}
	env := opts.Env
	if env == nil {
		env = DefaultEnvironment()
	}
	mem := opts.Memory
	if mem == nil {
		mem = defaultMemory
	}

	p.browser = env.Browser()
	if !p.browser && kind != Memory {
		p.log.Debug("no browser context, using memory", Fields{"requested": kind})
		kind = Memory
		build = factories[Memory]
	}

	store, err := build(env, mem)
	if kind.Persistent() {
		if err == nil {
			err = probe(store)
		}
		if err != nil {
			p.log.Warn("persistent storage unusable, falling back to memory", Fields{
				"requested": kind,
				FieldErr:    err,
			})
			kind = Memory
			store, err = mem()
		}
	}
	if err == nil && store == nil {
		err = errors.New("factory returned nil")
	}
	if err != nil {
		return nil, &ConfigError{Field: "memory", Err: fmt.Errorf("%w: %v", ErrMemoryBackend, err)}
	}

	p.kind = kind
	p.store = store
	p.log.Debug("storage selected", Fields{"storeType": kind, "prefix": p.prefix})
	return p, nil
}

// probe checks that the store accepts writes. Browsers may expose a storage
// object that throws on every setItem (Safari private mode, full quota).
func probe(b backend.Backend) error {
	if err := b.SetItem(probeKey, "1"); err != nil {
		return err
	}
	return b.RemoveItem(probeKey)
}

// StoreType is the backend kind actually in use, after any fallback.
func (p *Provider) StoreType() StoreType { return p.kind }

func (p *Provider) Prefix() string { return p.prefix }

// Browser reports whether the provider was built in a browser context.
func (p *Provider) Browser() bool { return p.browser }

func (p *Provider) key(k string) string { return util.DeriveKey(p.prefix, k) }

// SetValue encodes value and stores it under key. Encoding failures are
// returned as *SerializeError.
func (p *Provider) SetValue(key string, value any) error {
	k := p.key(key)
	b, err := p.codec.Encode(value)
	if err != nil {
		return &SerializeError{Key: k, Err: err}
	}
	if err := p.store.SetItem(k, string(b)); err != nil {
		return fmt.Errorf("webstore: set %q: %w", k, err)
	}
	return nil
}

// GetValue returns the decoded value under key, or nil on a miss. A stored
// string that the codec cannot decode is returned unchanged.
// Backend read errors are logged and reported as a miss.
func (p *Provider) GetValue(key string) any {
	v, _, err := p.Lookup(key)
	if err != nil {
		p.log.Warn("read failed", Fields{"key": p.key(key), FieldErr: err})
		return nil
	}
	return v
}

// Lookup is GetValue with the hit flag and backend errors exposed.
// ok is true for a stored JSON null, where v is nil.
func (p *Provider) Lookup(key string) (v any, ok bool, err error) {
	k := p.key(key)
	raw, ok, err := p.store.GetItem(k)
	if err != nil {
		return nil, false, fmt.Errorf("webstore: get %q: %w", k, err)
	}
	if !ok {
		return nil, false, nil
	}
	v, err = p.codec.Decode([]byte(raw))
	if err != nil {
		// values written by other code may not be ours to decode
		p.log.Debug("returning undecodable value as raw string", Fields{"key": k, FieldErr: err})
		return raw, true, nil
	}
	return v, true, nil
}

// RemoveValue deletes the entry under key. Missing keys are not an error.
func (p *Provider) RemoveValue(key string) error {
	k := p.key(key)
	if err := p.store.RemoveItem(k); err != nil {
		return fmt.Errorf("webstore: remove %q: %w", k, err)
	}
	return nil
}
