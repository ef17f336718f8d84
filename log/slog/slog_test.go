//go:build go1.21

package slog

import (
	"bytes"
	"encoding/json"
	"errors"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/webstore"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewJSONHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := New(stdslog.New(h))

	l.Warn("fallback", webstore.Fields{
		"requested":       webstore.Session,
		"prefix":          "app",
		webstore.FieldErr: errors.New("quota"),
	})

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if rec["level"] != "WARN" || rec["msg"] != "fallback" || rec["component"] != "webstore" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["requested"] != "session" || rec["prefix"] != "app" || rec["err"] != "quota" {
		t.Fatalf("unexpected fields: %v", rec)
	}
}

func TestSlogAttrsSortedByKey(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := Logger{L: stdslog.New(h)}

	l.Info("selected", webstore.Fields{"z": 1, "a": 2, "m": 3})

	line := buf.String()
	ia, im, iz := strings.Index(line, "a=2"), strings.Index(line, "m=3"), strings.Index(line, "z=1")
	if ia < 0 || !(ia < im && im < iz) {
		t.Fatalf("attrs not in key order: %q", line)
	}
}

func TestSlogSkipsDisabledLevels(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn})
	l := New(stdslog.New(h))

	l.Debug("hidden", webstore.Fields{"k": "v"})
	l.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("disabled levels should not log: %q", buf.String())
	}
}
