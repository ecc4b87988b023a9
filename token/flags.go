package token

// Flags is the per-chunk bitset ("PCF flags" in the glossary): a closed
// vocabulary of state bits threaded through the pipeline. Represented as a
// single machine word rather than N boolean struct fields, per the design
// note in spec.md section 9 ("strongly-typed bitset").
type Flags uint64

const (
	// FlagInPreprocessor marks a chunk lexically inside a '#' directive
	// (including its continuation lines).
	FlagInPreprocessor Flags = 1 << iota
	// FlagInFuncDef marks a chunk inside a function definition's signature
	// or body.
	FlagInFuncDef
	// FlagInFuncCall marks a chunk inside a function-call argument list.
	FlagInFuncCall
	// FlagInTemplate marks a chunk inside template angle brackets.
	FlagInTemplate
	// FlagInConstArgs marks a chunk inside a template non-type argument
	// that is itself a constant-expression (disables '<'/'>' as compare).
	FlagInConstArgs
	// FlagInClassBase marks a chunk in a class/struct base-clause.
	FlagInClassBase
	// FlagInFor marks a chunk inside a for-statement's control parens.
	FlagInFor
	// FlagOneLiner marks a construct whose body fits on the header's
	// physical line and should be preserved as such absent an explicit
	// override or a width overflow.
	FlagOneLiner
	// FlagVarDef marks an identifier chunk that is a declared variable
	// name.
	FlagVarDef
	// FlagVarDefFirst marks the first declared variable of a
	// comma-separated group ("first-variable-of-a-group").
	FlagVarDefFirst
	// FlagVarDefInline marks a declared variable after the first in its
	// group.
	FlagVarDefInline
	// FlagWasAligned marks a chunk that is (or was) a member of an
	// AlignStack column-group.
	FlagWasAligned
	// FlagAlignStart marks the first chunk of an alignment column-group.
	FlagAlignStart
	// FlagRightComment marks a trailing (same-line, right-hand) comment.
	FlagRightComment
	// FlagContinuationLine marks a chunk that begins a continuation of a
	// split logical line (set by the width splitter).
	FlagContinuationLine
	// FlagDontIndent suppresses indentation recomputation for this chunk.
	FlagDontIndent
	// FlagAnchor marks a chunk that other chunks' alignment/indentation is
	// computed relative to.
	FlagAnchor
	// FlagErrorAtEOF marks the final chunk produced after an
	// UnterminatedLiteral recovery, so downstream stages know the input
	// was truncated.
	FlagErrorAtEOF
	// FlagInCondExpr marks a token between a '?' and its matching ':'.
	FlagInCondExpr
	// FlagParamPack marks a chunk that is part of (or refers to) a
	// variadic parameter pack.
	FlagParamPack
	// FlagInPPDefinedParen marks a chunk inside the parens of a
	// preprocessor "defined(...)" operator.
	FlagInPPDefinedParen
	// FlagInsertedWhitespace marks a chunk synthesized by a formatting
	// pass rather than the original tokenizer (newlines inserted by the
	// normalizer, continuation indent chunks).
	FlagInsertedWhitespace
	// FlagMacroArg marks a chunk that is a macro-call argument token.
	FlagMacroArg
	// FlagDigraph marks a chunk whose text is a digraph/trigraph spelling
	// of a more common punctuator.
	FlagDigraph
)

// copyMask is the set of flags that the newline normalizer propagates onto
// a synthesized newline chunk (spec.md section 4.6, "Newline insertion
// contract").
const copyMask = FlagInPreprocessor | FlagInFuncDef | FlagInFuncCall |
	FlagInTemplate | FlagInConstArgs | FlagInClassBase | FlagInFor

// CopyMask returns the flag subset propagated onto a chunk synthesized
// between prev and next by the newline normalizer.
func CopyMask() Flags { return copyMask }

// Has reports whether every bit in want is set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Any reports whether any bit in want is set.
func (f Flags) Any(want Flags) bool { return f&want != 0 }

// Set returns f with every bit in add set.
func (f Flags) Set(add Flags) Flags { return f | add }

// Clear returns f with every bit in remove cleared.
func (f Flags) Clear(remove Flags) Flags { return f &^ remove }
