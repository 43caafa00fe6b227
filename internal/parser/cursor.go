// Package parser implements the declaration parser, the expression
// parser and the small set of cursor utilities both share.
package parser

import "github.com/doyoubi/minimoe/internal/token"

// TokenCursor walks a fixed slice of Tokens (one CodeLine, or a bracketed
// sub-range of one) one token at a time.
type TokenCursor struct {
	toks []token.Token
	pos  int
}

// NewTokenCursor returns a cursor positioned at the start of toks.
func NewTokenCursor(toks []token.Token) TokenCursor {
	return TokenCursor{toks: toks}
}

// Cur returns the token under the cursor, or false if the cursor has
// reached the end of its slice.
func (c *TokenCursor) Cur() (token.Token, bool) {
	if c.pos >= len(c.toks) {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

// Advance moves the cursor one token forward.
func (c *TokenCursor) Advance() {
	c.pos++
}

// AtEnd reports whether the cursor has consumed every token in its slice.
func (c *TokenCursor) AtEnd() bool {
	return c.pos >= len(c.toks)
}

// Prev returns the most recently consumed token. It must only be called
// once at least one Advance has happened on a non-empty cursor.
func (c *TokenCursor) Prev() token.Token {
	if c.pos == 0 {
		return c.toks[0]
	}
	return c.toks[c.pos-1]
}

// Pos returns the cursor's current offset, for snapshot/rollback.
func (c *TokenCursor) Pos() int { return c.pos }

// Seek restores a previously captured offset.
func (c *TokenCursor) Seek(pos int) { c.pos = pos }

// LineCursor walks a CodeFile's lines one at a time.
type LineCursor struct {
	lines []token.Line
	pos   int
}

// NewLineCursor returns a cursor positioned at the first line.
func NewLineCursor(lines []token.Line) LineCursor {
	return LineCursor{lines: lines}
}

// Cur returns the line under the cursor, or false at end of file.
func (c *LineCursor) Cur() (token.Line, bool) {
	if c.pos >= len(c.lines) {
		return token.Line{}, false
	}
	return c.lines[c.pos], true
}

// Advance moves the cursor one line forward.
func (c *LineCursor) Advance() {
	c.pos++
}

// AtEnd reports whether every line has been consumed.
func (c *LineCursor) AtEnd() bool {
	return c.pos >= len(c.lines)
}

// Pos returns the cursor's current line index.
func (c *LineCursor) Pos() int { return c.pos }

// Seek restores a previously captured line index.
func (c *LineCursor) Seek(pos int) { c.pos = pos }
