//go:build js && wasm

package webstore

import (
	"fmt"
	"syscall/js"

	"github.com/unkn0wn-root/webstore/backend"
	"github.com/unkn0wn-root/webstore/backend/webstorage"
)

type browserEnv struct{}

// BrowserEnvironment resolves Local and Session to window.localStorage and
// window.sessionStorage.
func BrowserEnvironment() Environment { return browserEnv{} }

func (browserEnv) Browser() bool { return true }

func (browserEnv) Storage(kind StoreType) (backend.Backend, error) {
	var name string
	switch kind {
	case Local:
		name = webstorage.LocalStorage
	case Session:
		name = webstorage.SessionStorage
	default:
		return nil, fmt.Errorf("webstore: %s is not a browser store", kind)
	}
	s, err := webstorage.Open(name)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultEnvironment is the browser environment when a window (page) or self
// (worker) global exists, and the server environment otherwise (e.g. Node).
func DefaultEnvironment() Environment {
	g := js.Global()
	if g.Get("window").Truthy() || g.Get("self").Truthy() {
		return BrowserEnvironment()
	}
	return ServerEnvironment()
}
