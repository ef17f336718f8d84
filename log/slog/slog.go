//go:build go1.21

// Package slog adapts a *slog.Logger to webstore.Logger.
package slog

import (
	"context"
	"fmt"
	stdslog "log/slog"
	"sort"

	"github.com/unkn0wn-root/webstore"
)

var _ webstore.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New tags every record with component=webstore.
func New(l *stdslog.Logger) Logger { return Logger{L: l.With("component", "webstore")} }

func (s Logger) Debug(msg string, f webstore.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f webstore.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f webstore.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f webstore.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f webstore.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, level) {
		return
	}
	s.L.LogAttrs(ctx, level, msg, attrs(f)...)
}

// attrs emits fields in key order. Errors and Stringers become strings so
// every handler renders them the same way.
func attrs(f webstore.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range keys {
		switch v := f[k].(type) {
		case error:
			out = append(out, stdslog.String(k, v.Error()))
		case fmt.Stringer:
			out = append(out, stdslog.String(k, v.String()))
		default:
			out = append(out, stdslog.Any(k, v))
		}
	}
	return out
}
