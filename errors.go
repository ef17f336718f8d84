package webstore

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStoreType is wrapped by *ConfigError when storeType is
	// not one of memory, local or session.
	ErrUnsupportedStoreType = errors.New("unsupported store type")

	// ErrPrefixNotString is wrapped by *TypeError when a config map carries a
	// non-string prefix.
	ErrPrefixNotString = errors.New("prefix must be a string")

	// ErrMemoryBackend is wrapped by *ConfigError when the memory factory fails.
	// There is nothing left to fall back to at that point.
	ErrMemoryBackend = errors.New("memory backend unavailable")
)

// ConfigError reports an option that cannot be used to build a Provider.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("webstore: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("webstore: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TypeError reports a config map value of the wrong dynamic type.
type TypeError struct {
	Field string
	Got   string // Go type of the offending value
	Err   error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("webstore: %s: got %s: %v", e.Field, e.Got, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }

// SerializeError is returned by SetValue when the value cannot be encoded.
type SerializeError struct {
	Key string // derived key
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("webstore: encode value for %q: %v", e.Key, e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }

// DecodeError is returned by typed reads when the stored string does not
// decode into the requested type.
type DecodeError struct {
	Key string // derived key
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("webstore: decode value at %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
