package lexer

import (
	"testing"

	"github.com/doyoubi/minimoe/internal/diagnostics"
	"github.com/doyoubi/minimoe/internal/token"
)

func tokenKinds(t *testing.T, file *CodeFile, row int) []token.Kind {
	t.Helper()
	for _, line := range file.Lines {
		if len(line.Tokens) > 0 && line.Tokens[0].Row == row {
			kinds := make([]token.Kind, len(line.Tokens))
			for i, tok := range line.Tokens {
				kinds[i] = tok.Kind
			}
			return kinds
		}
	}
	return nil
}

func TestScanIntegerAndFloat(t *testing.T) {
	file := Scan("42 3.14 .5")
	if len(file.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1 (the leading '.5' case)", len(file.Diagnostics))
	}
	if file.Diagnostics[0].Kind != diagnostics.InvalidFloat {
		t.Errorf("Diagnostics[0].Kind = %s, want %s", file.Diagnostics[0].Kind, diagnostics.InvalidFloat)
	}
	if len(file.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(file.Lines))
	}
	toks := file.Lines[0].Tokens
	if len(toks) != 4 { // 42, 3.14, '.', 5
		t.Fatalf("len(Tokens) = %d, want 4", len(toks))
	}
	if toks[0].Kind != token.Integer || toks[0].Literal != "42" {
		t.Errorf("toks[0] = %+v, want Integer 42", toks[0])
	}
	if toks[1].Kind != token.Float || toks[1].Literal != "3.14" {
		t.Errorf("toks[1] = %+v, want Float 3.14", toks[1])
	}
	if toks[2].Kind != token.Dot {
		t.Errorf("toks[2].Kind = %s, want Dot", toks[2].Kind)
	}
	if toks[3].Kind != token.Integer || toks[3].Literal != "5" {
		t.Errorf("toks[3] = %+v, want Integer 5", toks[3])
	}
}

func TestScanIntegerFollowedByDotNotADigit(t *testing.T) {
	file := Scan("12.")
	if len(file.Diagnostics) != 1 || file.Diagnostics[0].Kind != diagnostics.InvalidFloat {
		t.Fatalf("Diagnostics = %v, want one InvalidFloat", file.Diagnostics)
	}
	if file.Diagnostics[0].Anchor == nil || file.Diagnostics[0].Anchor.Literal != "12." {
		t.Errorf("Diagnostics[0].Anchor = %+v, want literal %q", file.Diagnostics[0].Anchor, "12.")
	}
	toks := file.Lines[0].Tokens
	if len(toks) != 1 {
		t.Fatalf("len(Tokens) = %d, want 1: %+v", len(toks), toks)
	}
	if toks[0].Kind != token.Float || toks[0].Literal != "12" {
		t.Errorf("toks[0] = %+v, want Float \"12\"", toks[0])
	}
}

func TestScanIdentifierDoesNotConsumeDigits(t *testing.T) {
	file := Scan("x1")
	if len(file.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", file.Diagnostics)
	}
	toks := file.Lines[0].Tokens
	want := []token.Kind{token.Identifier, token.Integer}
	if len(toks) != len(want) {
		t.Fatalf("len(Tokens) = %d, want %d: %+v", len(toks), len(want), toks)
	}
	if toks[0].Literal != "x" || toks[1].Literal != "1" {
		t.Errorf("literals = %q, %q, want \"x\", \"1\"", toks[0].Literal, toks[1].Literal)
	}
}

func TestScanReservedWordsVsIdentifiers(t *testing.T) {
	file := Scan("phrase SumFrom_To end")
	toks := file.Lines[0].Tokens
	want := []token.Kind{token.Phrase, token.Identifier, token.End}
	if len(toks) != len(want) {
		t.Fatalf("len(Tokens) = %d, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("toks[%d].Kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	file := Scan(`"hello\nworld"`)
	if len(file.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", file.Diagnostics)
	}
	toks := file.Lines[0].Tokens
	if len(toks) != 1 || toks[0].Kind != token.String {
		t.Fatalf("toks = %+v, want single String token", toks)
	}
	if toks[0].Literal != "hello\nworld" {
		t.Errorf("Literal = %q, want %q", toks[0].Literal, "hello\nworld")
	}
}

func TestScanInvalidEscape(t *testing.T) {
	file := Scan(`"bad\qescape"`)
	if len(file.Diagnostics) != 1 || file.Diagnostics[0].Kind != diagnostics.InvalidEscapeChar {
		t.Fatalf("Diagnostics = %v, want one InvalidEscapeChar", file.Diagnostics)
	}
}

func TestScanIncompleteString(t *testing.T) {
	file := Scan("\"never closed\nphrase")
	var found bool
	for _, d := range file.Diagnostics {
		if d.Kind == diagnostics.IncompleteString {
			found = true
		}
	}
	if !found {
		t.Fatalf("Diagnostics = %v, want IncompleteString", file.Diagnostics)
	}
	// the line after the unterminated string is still scanned normally
	if kinds := tokenKinds(t, file, 2); len(kinds) != 1 || kinds[0] != token.Phrase {
		t.Errorf("row 2 kinds = %v, want [Phrase]", kinds)
	}
}

func TestScanComment(t *testing.T) {
	file := Scan("1 -- trailing comment\n2")
	if len(file.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", file.Diagnostics)
	}
	if len(file.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(file.Lines))
	}
	if file.Lines[0].Tokens[0].Literal != "1" || file.Lines[1].Tokens[0].Literal != "2" {
		t.Errorf("unexpected token literals across lines: %+v", file.Lines)
	}
}

func TestScanMinusIsNotAlwaysAComment(t *testing.T) {
	file := Scan("3 - 1")
	toks := file.Lines[0].Tokens
	want := []token.Kind{token.Integer, token.Sub, token.Integer}
	if len(toks) != len(want) {
		t.Fatalf("len(Tokens) = %d, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("toks[%d].Kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	file := Scan("a <= b >= c <> d == e < f > g = h")
	toks := file.Lines[0].Tokens
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.Identifier, token.LE, token.Identifier, token.GE, token.Identifier,
		token.NE, token.Identifier, token.EQ, token.Identifier, token.LT, token.Identifier,
		token.GT, token.Identifier, token.Assign, token.Identifier,
	}
	if len(kinds) != len(want) {
		t.Fatalf("len(kinds) = %d, want %d: %v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], k)
		}
	}
}

func TestScanUnexpectedChar(t *testing.T) {
	file := Scan("a $ b")
	if len(file.Diagnostics) != 1 || file.Diagnostics[0].Kind != diagnostics.UnexpectedChar {
		t.Fatalf("Diagnostics = %v, want one UnexpectedChar", file.Diagnostics)
	}
}

func TestScanRowColumnTracking(t *testing.T) {
	file := Scan("abc\n  xyz")
	if len(file.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(file.Lines))
	}
	first := file.Lines[0].Tokens[0]
	if first.Row != 1 || first.Column != 1 {
		t.Errorf("first token = %+v, want row 1 col 1", first)
	}
	second := file.Lines[1].Tokens[0]
	if second.Row != 2 || second.Column != 3 {
		t.Errorf("second token = %+v, want row 2 col 3", second)
	}
}

func TestScanEmptySource(t *testing.T) {
	file := Scan("")
	if len(file.Lines) != 0 || len(file.Diagnostics) != 0 {
		t.Errorf("Scan(\"\") = %+v, want empty file", file)
	}
}

func TestScanBrackets(t *testing.T) {
	file := Scan("(1, [2])")
	toks := file.Lines[0].Tokens
	want := []token.Kind{token.LParen, token.Integer, token.Comma, token.LBracket, token.Integer, token.RBracket, token.RParen}
	if len(toks) != len(want) {
		t.Fatalf("len(Tokens) = %d, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("toks[%d].Kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}
