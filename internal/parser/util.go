package parser

import (
	"github.com/doyoubi/minimoe/internal/diagnostics"
	"github.com/doyoubi/minimoe/internal/token"
)

// expectSilent consumes the current token if it has kind k, reporting
// nothing on mismatch. Used where the caller already knows the token must
// match (e.g. the dispatcher has already inspected the line's first
// token) and a diagnostic would be redundant.
func expectSilent(tc *TokenCursor, k token.Kind) bool {
	cur, ok := tc.Cur()
	if !ok || cur.Kind != k {
		return false
	}
	tc.Advance()
	return true
}

// expect consumes the current token if it has kind k, and otherwise
// raises UnexpectedTokenType anchored at the mismatching token. At the end
// of the cursor it returns false without a diagnostic; callers that want
// NoMoreToken reported check reachedEnd first.
func expect(tc *TokenCursor, k token.Kind, sink *diagnostics.Sink) bool {
	cur, ok := tc.Cur()
	if !ok {
		return false
	}
	if cur.Kind == k {
		tc.Advance()
		return true
	}
	sink.Add(diagnostics.UnexpectedTokenType, &cur, "expected token kind %s but found %s", k, cur.Kind)
	return false
}

// reachedEnd reports whether tc has no more tokens, raising NoMoreToken
// anchored at the last consumed token when it has.
func reachedEnd(tc *TokenCursor, sink *diagnostics.Sink) bool {
	if !tc.AtEnd() {
		return false
	}
	anchor := tc.Prev()
	sink.Add(diagnostics.NoMoreToken, &anchor, "expected another token but found none")
	return true
}

// notAtEndOfLine reports whether tc has been fully consumed. If tokens
// remain, it raises CanNotParseLeftToken anchored at the first leftover
// token and returns false.
func notAtEndOfLine(tc *TokenCursor, sink *diagnostics.Sink) bool {
	if tc.AtEnd() {
		return true
	}
	cur, _ := tc.Cur()
	sink.Add(diagnostics.CanNotParseLeftToken, &cur, "unexpected trailing token %q", cur.Literal)
	return false
}

// withLine runs body over the current line's tokens. It advances the line
// cursor one step iff body returns true; it always runs the
// not-at-end-of-line check first, so a body that stops parsing early
// still reports any leftover tokens on that line. Raises NoMoreLine (with
// no anchor) when the line cursor is already exhausted.
func withLine(lc *LineCursor, sink *diagnostics.Sink, body func(tc *TokenCursor) bool) bool {
	line, ok := lc.Cur()
	if !ok {
		sink.Add(diagnostics.NoMoreLine, nil, "expected another line but found none")
		return false
	}
	tc := NewTokenCursor(line.Tokens)
	result := body(&tc)
	notAtEndOfLine(&tc, sink)
	if !result {
		return false
	}
	lc.Advance()
	return true
}

// topLevelStarts are the token kinds that open a new top-level
// declaration; the function body-extent algorithm scans up to (but never
// past) the first line whose first token is one of these.
var topLevelStarts = map[token.Kind]bool{
	token.Phrase:   true,
	token.Sentence: true,
	token.Block:    true,
	token.Tag:      true,
	token.Type:     true,
	token.Module:   true,
	token.Using:    true,
	token.CPS:      true,
	token.Category: true,
}
