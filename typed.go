package webstore

import (
	"fmt"

	c "github.com/unkn0wn-root/webstore/codec"
)

// Typed reads and writes values of one Go type through a Provider's backend
// and key namespace, with its own codec. Unlike GetValue, a value that does
// not decode is an error: there is no V to hand back.
type Typed[V any] struct {
	p     *Provider
	codec c.Codec[V]
}

func NewTyped[V any](p *Provider, codec c.Codec[V]) *Typed[V] {
	return &Typed[V]{p: p, codec: codec}
}

func (t *Typed[V]) Set(key string, v V) error {
	k := t.p.key(key)
	b, err := t.codec.Encode(v)
	if err != nil {
		return &SerializeError{Key: k, Err: err}
	}
	if err := t.p.store.SetItem(k, string(b)); err != nil {
		return fmt.Errorf("webstore: set %q: %w", k, err)
	}
	return nil
}

// Get returns (v, true, nil) on hit and (zero, false, nil) on miss.
func (t *Typed[V]) Get(key string) (V, bool, error) {
	var zero V
	k := t.p.key(key)
	raw, ok, err := t.p.store.GetItem(k)
	if err != nil {
		return zero, false, fmt.Errorf("webstore: get %q: %w", k, err)
	}
	if !ok {
		return zero, false, nil
	}
	v, err := t.codec.Decode([]byte(raw))
	if err != nil {
		return zero, false, &DecodeError{Key: k, Err: err}
	}
	return v, true, nil
}

func (t *Typed[V]) Remove(key string) error { return t.p.RemoveValue(key) }
