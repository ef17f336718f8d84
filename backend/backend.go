// Package backend defines the raw string store used by webstore.
//
// Implementations MUST be transparent: GetItem must return exactly the string
// that was previously passed to SetItem for a key. Values are opaque to the
// backend; encoding is owned by webstore and its codecs.
//
// Important: webstore namespaces keys as "<prefix>:<key>". A backend may be a
// shared physical store (e.g. the browser's localStorage) holding unrelated
// data next to ours.
package backend

import "errors"

// ErrRejected is returned by SetItem when the store refused the write
// (eviction pressure, admission policy, entry too large).
var ErrRejected = errors.New("backend: write rejected")

// Backend is a minimal key -> string store with three operations, the same
// capability set as the Web Storage API (getItem/setItem/removeItem).
type Backend interface {
	// GetItem returns (value, true, nil) on hit; ("", false, nil) on miss.
	GetItem(key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error
}

// Closer is implemented by backends holding resources that should be released.
type Closer interface {
	Close() error
}
