// Package logrus adapts a *logrus.Entry to webstore.Logger.
package logrus

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/webstore"
)

var _ webstore.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New tags every entry with component=webstore.
func New(e *logrus.Entry) LogrusLogger {
	return LogrusLogger{E: e.WithField("component", "webstore")}
}

func (l LogrusLogger) Debug(msg string, f webstore.Fields) { l.log(logrus.DebugLevel, msg, f) }
func (l LogrusLogger) Info(msg string, f webstore.Fields)  { l.log(logrus.InfoLevel, msg, f) }
func (l LogrusLogger) Warn(msg string, f webstore.Fields)  { l.log(logrus.WarnLevel, msg, f) }
func (l LogrusLogger) Error(msg string, f webstore.Fields) { l.log(logrus.ErrorLevel, msg, f) }

func (l LogrusLogger) log(level logrus.Level, msg string, f webstore.Fields) {
	if !l.E.Logger.IsLevelEnabled(level) {
		return
	}
	l.E.WithFields(lf(f)).Log(level, msg)
}

// lf moves webstore.FieldErr to logrus.ErrorKey and flattens Stringers
// (e.g. webstore.StoreType) so formatters print plain strings.
func lf(f webstore.Fields) logrus.Fields {
	out := make(logrus.Fields, len(f))
	for k, v := range f {
		if k == webstore.FieldErr {
			k = logrus.ErrorKey
		}
		if s, ok := v.(fmt.Stringer); ok {
			v = s.String()
		}
		out[k] = v
	}
	return out
}
