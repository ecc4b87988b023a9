package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// EnumCleanup applies the mod_enum_last_comma IARF policy to every enum
// body's trailing comma, per original_source's enum_cleanup.cpp: Ignore
// leaves it alone, Remove deletes a comma immediately before the closing
// '}', and Add/Force inserts one when it's missing and the body isn't
// empty.
func EnumCleanup(ctx *cpd.Context, s *chunk.Store) {
	policy := ctx.Options.IARF("mod_enum_last_comma")
	if policy == options.Ignore {
		return
	}

	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindBraceCloseEnum {
			return true
		}
		prev := s.PrevNCNNL(c)
		switch {
		case prev.Type == token.KindComma:
			if policy == options.Remove {
				s.Delete(prev)
				ctx.MarkChange()
			}
		case prev.Type == token.KindBraceOpenEnum:
			// empty enum body: nothing to add a trailing comma after.
		default:
			if policy == options.Add || policy == options.Force {
				comma := s.Create(",", token.KindComma, prev.Flags)
				comma.Level = prev.Level
				comma.BraceLevel = prev.BraceLevel
				comma.BlockNumber = prev.BlockNumber
				s.InsertAfter(prev, comma)
				ctx.MarkChange()
			}
		}
		return true
	})
}

// RewriteInfiniteLoops canonicalizes infinite-loop spellings
// ("for(;;)" vs "while(true)"/"while(1)") to whichever form the
// mod_infinite_loop option names, per original_source's
// rewrite_infinite_loops.cpp. Only loops that consist of exactly the
// minimal required tokens are rewritten; anything with extra content (a
// non-trivial condition) is left untouched. Comments and newlines between
// those tokens are skipped by the shape checks and do not prevent a rewrite.
func RewriteInfiniteLoops(ctx *cpd.Context, s *chunk.Store) {
	desired := ctx.Options.String("mod_infinite_loop")
	if desired != "for" && desired != "while" {
		return
	}

	s.Each(func(c *chunk.Chunk) bool {
		switch c.Type {
		case token.KindKeywordFor:
			if desired == "while" && forIsInfiniteLoopShape(s, c) {
				rewriteForToWhile(ctx, s, c)
			}
		case token.KindKeywordWhile:
			if desired == "for" && whileIsInfiniteLoopShape(s, c) {
				rewriteWhileToFor(ctx, s, c)
			}
		}
		return true
	})
}

// forIsInfiniteLoopShape reports "for(;;)" with nothing else inside the
// control parens.
func forIsInfiniteLoopShape(s *chunk.Store, forKw *chunk.Chunk) bool {
	open := s.NextNCNNL(forKw)
	if open.Type != token.KindLParenOpen {
		return false
	}
	semi1 := s.NextNCNNL(open)
	if semi1.Type != token.KindSemicolon {
		return false
	}
	semi2 := s.NextNCNNL(semi1)
	if semi2.Type != token.KindSemicolon {
		return false
	}
	close := s.NextNCNNL(semi2)
	return close.Type == token.KindLParenClose
}

// whileIsInfiniteLoopShape reports "while(true)"/"while(1)" with nothing
// else inside the control parens.
func whileIsInfiniteLoopShape(s *chunk.Store, whileKw *chunk.Chunk) bool {
	open := s.NextNCNNL(whileKw)
	if open.Type != token.KindLParenOpen {
		return false
	}
	cond := s.NextNCNNL(open)
	if cond.Text != "true" && cond.Text != "1" {
		return false
	}
	close := s.NextNCNNL(cond)
	return close.Type == token.KindLParenClose
}

func rewriteForToWhile(ctx *cpd.Context, s *chunk.Store, forKw *chunk.Chunk) {
	open := s.NextNCNNL(forKw)
	semi1 := s.NextNCNNL(open)
	semi2 := s.NextNCNNL(semi1)
	close := s.NextNCNNL(semi2)

	forKw.Type = token.KindKeywordWhile
	forKw.Text = "while"
	cond := s.Create("true", token.KindIdent, semi1.Flags)
	cond.Level = semi1.Level
	cond.BraceLevel = semi1.BraceLevel
	s.InsertAfter(semi1, cond)
	s.Delete(semi1)
	s.Delete(semi2)
	retagFollowingBrace(s, close, token.KindBraceOpenWhile, token.KindBraceCloseWhile)
	ctx.MarkChange()
}

func rewriteWhileToFor(ctx *cpd.Context, s *chunk.Store, whileKw *chunk.Chunk) {
	open := s.NextNCNNL(whileKw)
	cond := s.NextNCNNL(open)
	close := s.NextNCNNL(cond)

	whileKw.Type = token.KindKeywordFor
	whileKw.Text = "for"
	semi1 := s.Create(";", token.KindSemicolon, cond.Flags)
	semi1.Level = cond.Level
	semi1.BraceLevel = cond.BraceLevel
	semi2 := s.Create(";", token.KindSemicolon, cond.Flags)
	semi2.Level = cond.Level
	semi2.BraceLevel = cond.BraceLevel
	s.InsertAfter(cond, semi2)
	s.InsertAfter(cond, semi1)
	s.Delete(cond)
	retagFollowingBrace(s, close, token.KindBraceOpenFor, token.KindBraceCloseFor)
	ctx.MarkChange()
}

// retagFollowingBrace fixes up the brace-role tag markBraceRoles already
// assigned for the loop's old keyword, now that RewriteInfiniteLoops has
// swapped it for the other spelling.
func retagFollowingBrace(s *chunk.Store, controlClose *chunk.Chunk, openKind, closeKind token.Kind) {
	open := s.NextNCNNL(controlClose)
	if open.Type != token.KindBraceOpenFor && open.Type != token.KindBraceOpenWhile {
		return
	}
	close := s.Get(open.MatchID)
	open.Type = openKind
	if !close.IsNull() {
		close.Type = closeKind
	}
}
