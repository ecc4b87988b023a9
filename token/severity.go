package token

// Severity is the logger's severity enumeration (spec.md section 6,
// "Logger (consumed)"): a wide, mostly-sparse numeric range so the sink can
// discard classes of messages by a simple numeric mask without the core
// needing to know how many distinct levels the sink actually cares about.
type Severity int

const (
	// LSys is reserved for unrecoverable system-level messages (always
	// logged, never masked).
	LSys Severity = 0
	// LFatal marks a fatal error (spec.md section 7: OptionOverflow,
	// StackCapacity).
	LFatal Severity = 1
	// LError marks a recoverable error bumping the error counter
	// (UnterminatedLiteral, UnmatchedCloser).
	LError Severity = 2
	// LWarn marks a non-fatal, non-counted anomaly.
	LWarn Severity = 3
	// LNote is an informational note always worth surfacing.
	LNote Severity = 4

	// LTok, LCombine, LAlign, LNewline, LIndent, LSplit are per-stage
	// trace bands, each reserving a block of 10 so a sink can mask e.g.
	// "every Combiner trace" via a range test instead of an exact match.
	LTok     Severity = 10
	LPP      Severity = 20
	LLevels  Severity = 30
	LCombine Severity = 40
	LNewline Severity = 50
	LAlign   Severity = 60
	LSplit   Severity = 70
	LIndent  Severity = 80
)

// Stage buckets a severity value into the pipeline stage it traces, for
// sinks that want to group by component rather than by exact level.
func (s Severity) Stage() string {
	switch {
	case s < LTok:
		return "core"
	case s < LPP:
		return "tokenizer"
	case s < LLevels:
		return "preprocessor"
	case s < LCombine:
		return "levels"
	case s < LNewline:
		return "combine"
	case s < LAlign:
		return "newline"
	case s < LSplit:
		return "align"
	case s < LIndent:
		return "split"
	default:
		return "indent"
	}
}

func (s Severity) String() string {
	switch s {
	case LSys:
		return "SYS"
	case LFatal:
		return "FATAL"
	case LError:
		return "ERROR"
	case LWarn:
		return "WARN"
	case LNote:
		return "NOTE"
	}
	return s.Stage() + "-TRACE"
}
