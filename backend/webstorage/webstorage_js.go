//go:build js && wasm

package webstorage

import (
	"syscall/js"

	"github.com/unkn0wn-root/webstore/backend"
)

// Storage is a backend.Backend over one Web Storage object.
type Storage struct {
	name string
	v    js.Value
}

var _ backend.Backend = (*Storage)(nil)

// Open returns the global storage object called name (LocalStorage or
// SessionStorage). Merely reading the property throws in some browsers when
// storage is blocked; that is reported as *Error.
func Open(name string) (s *Storage, err error) {
	defer catch("open", "", &err)
	v := js.Global().Get(name)
	if v.IsUndefined() || v.IsNull() {
		return nil, ErrUnavailable
	}
	return &Storage{name: name, v: v}, nil
}

// Name is the global the storage was opened from.
func (s *Storage) Name() string { return s.name }

func (s *Storage) GetItem(key string) (val string, ok bool, err error) {
	defer catch("getItem", key, &err)
	v := s.v.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s *Storage) SetItem(key, value string) (err error) {
	defer catch("setItem", key, &err)
	s.v.Call("setItem", key, value)
	return nil
}

func (s *Storage) RemoveItem(key string) (err error) {
	defer catch("removeItem", key, &err)
	s.v.Call("removeItem", key)
	return nil
}

// Len is the storage's length property (all keys, not just ours).
func (s *Storage) Len() (n int, err error) {
	defer catch("length", "", &err)
	return s.v.Get("length").Int(), nil
}

// catch converts a thrown JavaScript exception into *Error. Other panics are
// re-raised.
func catch(op, key string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	jsErr, ok := r.(js.Error)
	if !ok {
		panic(r)
	}
	name := "Error"
	if n := jsErr.Get("name"); n.Type() == js.TypeString {
		name = n.String()
	}
	*err = &Error{Op: op, Key: key, Name: name, Err: jsErr}
}
