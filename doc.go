// Package webstore implements a small key-value facade over browser storage.
// One Provider hides three backends behind the same three operations:
//
//   - memory:  a process-local map (or a bounded bigcache/ristretto store).
//   - local:   window.localStorage (GOOS=js GOARCH=wasm only).
//   - session: window.sessionStorage (GOOS=js GOARCH=wasm only).
//
// The backend is chosen once in New. Persistent storage is probed with a
// throwaway write; if the browser refuses it (private mode, quota exhausted,
// storage disabled) or no browser is present at all, the provider silently
// uses memory instead for the rest of its life.
//
// Keys:
//
//	<prefix>:<key>  - every entry written by a provider
//	<prefix>        - the entry addressed by an empty key
//
// Values are encoded with a Codec (JSON by default). Reads are permissive: a
// stored string that does not decode is returned as-is.
//
//	p, _ := webstore.New(webstore.Options{StoreType: webstore.Session, Prefix: webstore.Prefix("app")})
//	_ = p.SetValue("user", map[string]any{"id": 1})
//	v := p.GetValue("user") // map[string]any{"id": 1.0}
package webstore
