//go:build !(js && wasm)

package webstore

// DefaultEnvironment outside js/wasm is always the server environment.
func DefaultEnvironment() Environment { return ServerEnvironment() }
