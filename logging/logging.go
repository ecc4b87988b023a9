// Package logging provides the Logger interface the core consumes (spec.md
// section 6) plus two concrete implementations grounded in the teacher's
// own logging idiom.
package logging

import (
	"fmt"

	"github.com/chunkfmt/chunkfmt/token"
)

// Logger is the single entry point the core calls to emit a diagnostic.
// The sink decides whether sev is worth recording; the core never branches
// on whether logging is enabled.
type Logger interface {
	Logf(sev token.Severity, format string, args ...interface{})
}

// Debugf/Warnf/Errorf/Fatalf are convenience wrappers so call sites can
// read like the teacher's `log.Printf`/`log.Println` call sites rather than
// repeating `Logf` with an explicit severity at every call.
func Debugf(l Logger, stage token.Severity, format string, args ...interface{}) {
	l.Logf(stage, format, args...)
}

func Warnf(l Logger, format string, args ...interface{}) {
	l.Logf(token.LWarn, format, args...)
}

func Errorf(l Logger, format string, args ...interface{}) {
	l.Logf(token.LError, format, args...)
}

func Fatalf(l Logger, format string, args ...interface{}) {
	l.Logf(token.LFatal, format, args...)
}

// nopLogger discards everything. It is the zero-value-friendly default so
// cpd.New never requires a logger to be wired in tests.
type nopLogger struct{}

func (nopLogger) Logf(token.Severity, string, ...interface{}) {}

// Nop is the package-level singleton nopLogger.
var Nop Logger = nopLogger{}

// fmtMessage renders format/args exactly like fmt.Sprintf, kept as a
// helper so both concrete loggers below share one code path.
func fmtMessage(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
