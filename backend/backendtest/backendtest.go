// Package backendtest holds a conformance check shared by backend tests.
package backendtest

import (
	"strings"
	"testing"

	"github.com/unkn0wn-root/webstore/backend"
)

// Run exercises the backend.Backend contract against b. b must start empty.
func Run(t *testing.T, b backend.Backend) {
	t.Helper()

	if v, ok, err := b.GetItem("missing"); err != nil || ok || v != "" {
		t.Fatalf("GetItem miss: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := b.SetItem("k", `{"n":1}`); err != nil {
		t.Fatalf("SetItem: %v", err)
	}
	if v, ok, err := b.GetItem("k"); err != nil || !ok || v != `{"n":1}` {
		t.Fatalf("GetItem after set: v=%q ok=%v err=%v", v, ok, err)
	}

	// overwrite
	if err := b.SetItem("k", "plain text"); err != nil {
		t.Fatalf("SetItem overwrite: %v", err)
	}
	if v, ok, err := b.GetItem("k"); err != nil || !ok || v != "plain text" {
		t.Fatalf("GetItem after overwrite: v=%q ok=%v err=%v", v, ok, err)
	}

	// empty value is a hit, not a miss
	if err := b.SetItem("empty", ""); err != nil {
		t.Fatalf("SetItem empty: %v", err)
	}
	if _, ok, err := b.GetItem("empty"); err != nil || !ok {
		t.Fatalf("GetItem empty value: ok=%v err=%v", ok, err)
	}

	// values are opaque, including non-UTF-8 bytes
	bin := string([]byte{0x00, 0xff, 0xfe, 0x01})
	if err := b.SetItem("bin", bin); err != nil {
		t.Fatalf("SetItem bin: %v", err)
	}
	if v, _, _ := b.GetItem("bin"); v != bin {
		t.Fatalf("binary value not transparent: %x", v)
	}

	big := strings.Repeat("x", 16<<10)
	if err := b.SetItem("big", big); err != nil {
		t.Fatalf("SetItem big: %v", err)
	}
	if v, _, _ := b.GetItem("big"); v != big {
		t.Fatalf("big value mismatch: len=%d", len(v))
	}

	// idempotent remove
	for i := 0; i < 2; i++ {
		if err := b.RemoveItem("k"); err != nil {
			t.Fatalf("RemoveItem #%d: %v", i+1, err)
		}
		if _, ok, err := b.GetItem("k"); err != nil || ok {
			t.Fatalf("GetItem after remove #%d: ok=%v err=%v", i+1, ok, err)
		}
	}
	if err := b.RemoveItem("never-set"); err != nil {
		t.Fatalf("RemoveItem missing: %v", err)
	}

	// keys are independent
	if v, ok, _ := b.GetItem("big"); !ok || v != big {
		t.Fatalf("unrelated key disturbed by remove")
	}
}
