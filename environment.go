package webstore

import (
	"fmt"

	"github.com/unkn0wn-root/webstore/backend"
)

// Environment tells the provider where it runs and hands out the browser's
// persistent stores. It is injected so the provider can be exercised without
// a browser; DefaultEnvironment inspects the real runtime.
type Environment interface {
	// Browser reports whether a browser global context is present. When it
	// is not, every provider uses memory.
	Browser() bool

	// Storage returns the persistent store for kind (Local or Session).
	// Failing to obtain it is not fatal: the provider falls back to memory.
	Storage(kind StoreType) (backend.Backend, error)
}

type serverEnv struct{}

// ServerEnvironment is an environment with no browser globals.
func ServerEnvironment() Environment { return serverEnv{} }

func (serverEnv) Browser() bool { return false }

func (serverEnv) Storage(kind StoreType) (backend.Backend, error) {
	return nil, fmt.Errorf("webstore: no %s storage outside a browser", kind)
}
