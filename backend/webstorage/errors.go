package webstorage

import (
	"errors"
	"fmt"
)

// Global names of the two Web Storage objects.
const (
	LocalStorage   = "localStorage"
	SessionStorage = "sessionStorage"
)

// ErrUnavailable is returned by Open when the global object is missing.
var ErrUnavailable = errors.New("webstorage: storage object not available")

// Error is a JavaScript exception raised by a storage call.
type Error struct {
	Op   string // "open", "getItem", "setItem", "removeItem"
	Key  string
	Name string // DOMException name, e.g. "QuotaExceededError"
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("webstorage: %s: %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("webstorage: %s %q: %s: %v", e.Op, e.Key, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsQuotaExceeded reports whether err carries a QuotaExceededError.
func IsQuotaExceeded(err error) bool {
	var we *Error
	if !errors.As(err, &we) {
		return false
	}
	// Firefox historically used NS_ERROR_DOM_QUOTA_REACHED
	return we.Name == "QuotaExceededError" || we.Name == "NS_ERROR_DOM_QUOTA_REACHED"
}
