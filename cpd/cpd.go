// Package cpd holds the single process-wide context threaded through every
// pipeline stage (spec.md section 3.4, "Process-Wide State cpd"). It
// generalizes the teacher's central InoHandler struct (handler/handler.go)
// — which bundled connection state, build paths, and mutable document maps
// behind package-level globals in the original flat layout — into one
// explicit, constructor-built value with no package-level mutable state, per
// the design note "Global mutable state (cpd)".
package cpd

import (
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/logging"
	"github.com/chunkfmt/chunkfmt/options"
)

// Context is constructed fresh per input file/fragment; it carries no
// state that could leak between concurrent invocations processing
// different files (spec.md section 5).
type Context struct {
	// Lang is the language-flags bitmask for the current input.
	Lang langflags.Mask
	// Filename is used only for diagnostics.
	Filename string
	// Options is the external option-registry consumer handle.
	Options options.Provider
	// Logger is the external log sink handle.
	Logger logging.Logger

	// ErrorCount is bumped by every recoverable error (spec.md section 7).
	ErrorCount int
	// DirtyCount is bumped by MarkChange whenever a pass edits or retags
	// the stream, so format.Run can decide whether a second
	// {newline, align, indent} pass is worth running (spec.md section 2).
	DirtyCount int

	// nextBlockNumber is the block-number generator described in
	// spec.md section 3.1 / 4.4: a fresh id is drawn every time a `{`,
	// `(`, or `<` opens.
	nextBlockNumber int

	// FragColsOffset is the column offset of a sub-fragment of a larger
	// file (spec.md section 3.4, "frag_cols offset for fragment mode").
	// It is carried on the context only; no pass reads it.
	FragColsOffset int

	// recursionDepth counts nested EnterRecursion calls. combine.Run is
	// the only caller; when the depth exceeds MaxRecursionDepth it returns
	// an error that format.Run reports as StackCapacity. The align passes'
	// recursive descent into braces does not go through this counter.
	recursionDepth int
}

// MaxRecursionDepth is the fixed depth limit EnterRecursion enforces: 16,
// the size of the original's per-level align stacks (spec.md section 9's
// Open Question). It is a constant, not an option.
const MaxRecursionDepth = 16

// New constructs a fresh Context. opts/logger may be nil, in which case
// options.NewOrderedMapProvider(nil) and logging.Nop are used.
func New(lang langflags.Mask, filename string, opts options.Provider, logger logging.Logger) *Context {
	if opts == nil {
		opts = options.NewOrderedMapProvider(nil)
	}
	if logger == nil {
		logger = logging.Nop
	}
	return &Context{Lang: lang, Filename: filename, Options: opts, Logger: logger}
}

// NextBlockNumber draws a fresh id; see spec.md section 4.4.
func (c *Context) NextBlockNumber() int {
	c.nextBlockNumber++
	return c.nextBlockNumber
}

// BumpError records a recoverable error (spec.md section 7).
func (c *Context) BumpError() { c.ErrorCount++ }

// MarkChange records a structural edit (spec.md section 4.5,
// "mark_change").
func (c *Context) MarkChange() { c.DirtyCount++ }

// EnterRecursion increments the recursion depth and reports whether the
// caller must abort with a StackCapacity error.
func (c *Context) EnterRecursion() (ok bool) {
	c.recursionDepth++
	return c.recursionDepth <= MaxRecursionDepth
}

// ExitRecursion undoes EnterRecursion.
func (c *Context) ExitRecursion() {
	if c.recursionDepth > 0 {
		c.recursionDepth--
	}
}

// RecursionDepth reports the current recursion depth, for diagnostics.
func (c *Context) RecursionDepth() int { return c.recursionDepth }
