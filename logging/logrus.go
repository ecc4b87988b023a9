package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/chunkfmt/chunkfmt/token"
)

// LogrusLogger adapts the spec's severity enumeration onto a
// *logrus.Logger, grounded in vippsas-sqlcode's structured-logging idiom:
// every message carries a "stage" and "severity" field rather than being
// baked into the format string, so a JSON-formatted sink can filter/query
// on them.
type LogrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger wraps an existing *logrus.Logger. Passing logrus.New()
// gives the usual text-formatted-to-stderr default.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{l: l}
}

func levelFor(sev token.Severity) logrus.Level {
	switch {
	case sev == token.LFatal:
		return logrus.FatalLevel
	case sev == token.LError:
		return logrus.ErrorLevel
	case sev == token.LWarn:
		return logrus.WarnLevel
	case sev == token.LNote:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// Logf implements Logger.
func (ll *LogrusLogger) Logf(sev token.Severity, format string, args ...interface{}) {
	entry := ll.l.WithFields(logrus.Fields{
		"stage":    sev.Stage(),
		"severity": sev.String(),
	})
	entry.Log(levelFor(sev), fmtMessage(format, args...))
}
