package webstore

import (
	"github.com/unkn0wn-root/webstore/backend"
	c "github.com/unkn0wn-root/webstore/codec"
)

// StoreType names a backend kind.
type StoreType string

const (
	Memory  StoreType = "memory"
	Local   StoreType = "local"
	Session StoreType = "session"
)

const (
	DefaultStoreType = Local
	DefaultPrefix    = "test-app"
)

// Valid reports whether t is one of Memory, Local or Session.
func (t StoreType) Valid() bool {
	_, ok := factories[t]
	return ok
}

func (t StoreType) String() string { return string(t) }

// Persistent reports whether t is backed by browser storage.
func (t StoreType) Persistent() bool { return t == Local || t == Session }

// MemoryFactory builds the memory variant. It is called for StoreType Memory
// and again whenever a persistent backend has to be replaced.
type MemoryFactory func() (backend.Backend, error)

// Options configure a Provider. The zero value selects localStorage with the
// "test-app" prefix, JSON values and no logging.
type Options struct {
	StoreType StoreType // "" => Local
	Prefix    *string   // nil => DefaultPrefix; pointer to "" => no prefix

	Env    Environment   // nil => DefaultEnvironment()
	Memory MemoryFactory // nil => memory.New
	Codec  c.Codec[any]  // nil => codec.JSON[any]
	Logger Logger        // nil => NopLogger
}

// Prefix returns a pointer to s for Options.Prefix.
func Prefix(s string) *string { return &s }

func New(opts Options) (*Provider, error) {
	return newProvider(opts)
}
