package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/chunkfmt/chunkfmt/token"
)

// ColorLogger mirrors handler/handler.go's `color.New(color.FgHiYellow)`
// prefixed trace lines from the teacher: every message is written with a
// severity-coloured prefix, one line per call, guarded by a mutex so
// concurrent stages (there are none in the core itself, but a driver
// formatting several files at once may share a logger per spec.md section 5)
// never interleave a line.
type ColorLogger struct {
	w   io.Writer
	mu  sync.Mutex
	min token.Severity
}

// NewColorLogger returns a Logger that writes every message at severity
// >= min to w with a colourised "[SEV]" prefix.
func NewColorLogger(w io.Writer, min token.Severity) *ColorLogger {
	return &ColorLogger{w: w, min: min}
}

var (
	fatalColor = color.New(color.FgHiRed, color.Bold)
	errorColor = color.New(color.FgRed)
	warnColor  = color.New(color.FgHiYellow)
	noteColor  = color.New(color.FgHiCyan)
	traceColor = color.New(color.FgHiBlack)
)

func colorFor(sev token.Severity) *color.Color {
	switch {
	case sev == token.LFatal:
		return fatalColor
	case sev == token.LError:
		return errorColor
	case sev == token.LWarn:
		return warnColor
	case sev == token.LNote:
		return noteColor
	default:
		return traceColor
	}
}

// Logf implements Logger.
func (c *ColorLogger) Logf(sev token.Severity, format string, args ...interface{}) {
	if sev > c.min && sev >= token.LTok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := colorFor(sev).Sprintf("[%s]", sev)
	fmt.Fprintf(c.w, "%s %s\n", prefix, fmtMessage(format, args...))
}
