package parser

import (
	"github.com/doyoubi/minimoe/internal/ast"
	"github.com/doyoubi/minimoe/internal/diagnostics"
	"github.com/doyoubi/minimoe/internal/symbols"
	"github.com/doyoubi/minimoe/internal/token"
)

// ParseExpression parses an `Or`-level expression: `or` binds loosest,
// `and` next, then Prim.
func ParseExpression(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	return parseOr(tc, stack, sink)
}

func parseOr(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	return parseBinary(tc, stack, sink, parseAnd, token.Or, ast.BinaryOr)
}

func parseAnd(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	return parseBinary(tc, stack, sink, parsePrim, token.And, ast.BinaryAnd)
}

type innerParser func(*TokenCursor, *symbols.Stack, *diagnostics.Sink) ast.Expr

// parseBinary folds a left-associative chain of a single operator kind.
// It repeatedly peeks the next token; on a match it consumes the operator
// and parses a right operand with inner. If the right operand fails, the
// partial left-hand result is returned and the operator token is left
// unconsumed (the cursor is rolled back to just before it), leaving the
// dangling operator for the caller to see.
func parseBinary(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink, inner innerParser, opKind token.Kind, op ast.BinaryOp) ast.Expr {
	left := inner(tc, stack, sink)
	if left == nil {
		return nil
	}
	for {
		cur, ok := tc.Cur()
		if !ok || cur.Kind != opKind {
			return left
		}
		snapshot := tc.Pos()
		tc.Advance()
		rhs := inner(tc, stack, sink)
		if rhs == nil {
			tc.Seek(snapshot)
			return left
		}
		left = &ast.Binary{Op: op, LHS: left, RHS: rhs}
	}
}

// parsePrim implements the Prim production: it snapshots the cursor and
// tries Invoke, then (restoring the snapshot) List, each against a
// private diagnostic sink so a failed speculative attempt never pollutes
// the caller's diagnostics. If both fail it dispatches on the current
// token's kind (literal, unary, parenthesized Prim, or symbol). Only when
// that dispatch also fails are the accumulated Invoke/List attempt
// diagnostics appended to sink.
func parsePrim(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	snapshot := tc.Pos()
	scratch := diagnostics.NewSink()

	if inv := tryInvoke(tc, stack, scratch); inv != nil {
		return inv
	}
	tc.Seek(snapshot)

	if lst := tryList(tc, stack, scratch); lst != nil {
		return lst
	}
	tc.Seek(snapshot)

	result := dispatchPrim(tc, stack, sink)
	if result == nil {
		sink.Merge(scratch)
	}
	return result
}

func dispatchPrim(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	if reachedEnd(tc, sink) {
		return nil
	}
	cur, _ := tc.Cur()
	switch cur.Kind {
	case token.Integer:
		tc.Advance()
		return &ast.Literal{Kind: ast.LitInteger, Text: cur.Literal}
	case token.Float:
		tc.Advance()
		return &ast.Literal{Kind: ast.LitFloat, Text: cur.Literal}
	case token.String:
		tc.Advance()
		return &ast.Literal{Kind: ast.LitString, Text: cur.Literal}
	case token.Add, token.Sub, token.Not:
		tc.Advance()
		operand := parsePrim(tc, stack, sink)
		if operand == nil {
			return nil
		}
		return &ast.Unary{Op: unaryOpOf(cur.Kind), Operand: operand}
	case token.LParen:
		tc.Advance()
		inner := parsePrim(tc, stack, sink)
		if inner == nil {
			return nil
		}
		if !expectSilent(tc, token.RParen) {
			closeBracketNotFound(tc, sink)
			return nil
		}
		return inner
	case token.Identifier:
		return parseSymbol(tc, stack, sink)
	default:
		sink.Add(diagnostics.UnexpectedTokenType, &cur, "unexpected token %s in expression", cur.Kind)
		return nil
	}
}

func unaryOpOf(k token.Kind) ast.UnaryOp {
	switch k {
	case token.Sub:
		return ast.UnaryNegative
	case token.Not:
		return ast.UnaryNot
	default:
		return ast.UnaryPositive
	}
}

func parseSymbol(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	cur, ok := tc.Cur()
	if !ok {
		reachedEnd(tc, sink)
		return nil
	}
	tc.Advance()
	sym := stack.Resolve(cur.Literal)
	if sym == nil {
		sink.Add(diagnostics.CanNotResolveSymbol, &cur, "can't resolve symbol %q", cur.Literal)
		return nil
	}
	return &ast.SymbolRef{Resolved: sym}
}

// tryInvoke walks the stack's visible functions, innermost frame first,
// attempting a full mixfix match against each in turn. Every attempt gets
// its own private sink; if every attempt fails, only the last attempt's
// diagnostics are copied into sink.
func tryInvoke(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	snapshot := tc.Pos()
	var lastAttempt *diagnostics.Sink
	for _, fn := range stack.Functions() {
		tc.Seek(snapshot)
		attempt := diagnostics.NewSink()
		if expr := parseOneFunction(tc, stack, fn, attempt); expr != nil {
			return expr
		}
		lastAttempt = attempt
	}
	tc.Seek(snapshot)
	if lastAttempt != nil {
		sink.Merge(lastAttempt)
	}
	return nil
}

func parseOneFunction(tc *TokenCursor, stack *symbols.Stack, fn *ast.Function, sink *diagnostics.Sink) ast.Expr {
	var args []ast.Expr
	for _, frag := range fn.Fragments {
		switch frag.Kind {
		case ast.FragName:
			if reachedEnd(tc, sink) {
				return nil
			}
			cur, _ := tc.Cur()
			if cur.Kind != token.Identifier || cur.Literal != frag.Name {
				sink.Add(diagnostics.WrongFunctionName, &cur, "expected function name fragment %q", frag.Name)
				return nil
			}
			tc.Advance()
		case ast.FragArgument:
			if !expect(tc, token.LParen, sink) {
				return nil
			}
			arg := ParseExpression(tc, stack, sink)
			if arg == nil {
				return nil
			}
			if !expect(tc, token.RParen, sink) {
				return nil
			}
			args = append(args, arg)
		}
	}
	return &ast.Invoke{Callee: fn, Arguments: args}
}

// tryList is List's speculative entry point from Prim: it requires an
// opening bracket and otherwise fails silently (no diagnostic — a missing
// opening bracket here just means this wasn't a list).
func tryList(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	if !expectSilent(tc, token.LParen) {
		return nil
	}
	return parseList(tc, stack, sink, false)
}

// ParseList is List's direct entry point, used when a caller explicitly
// wants list-literal semantics rather than Prim's speculative dispatch.
// Unlike the speculative path, a single element with no trailing comma is
// a real error here rather than a silent fallback to a parenthesized
// expression.
func ParseList(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink) ast.Expr {
	if !expect(tc, token.LParen, sink) {
		return nil
	}
	return parseList(tc, stack, sink, true)
}

// parseList parses the comma-separated element sequence and closing
// bracket once the opening `(` has already been consumed. direct
// distinguishes ParseList's caller from Prim's speculative tryList: a
// bare single element with no trailing comma, e.g. "(1)", is a genuine
// list only when direct is true; otherwise it silently fails so Prim can
// fall back to reading it as a parenthesized expression instead.
func parseList(tc *TokenCursor, stack *symbols.Stack, sink *diagnostics.Sink, direct bool) ast.Expr {
	if cur, ok := tc.Cur(); ok && cur.Kind == token.RParen {
		tc.Advance()
		return &ast.List{}
	}

	var elements []ast.Expr
	for {
		e := ParseExpression(tc, stack, sink)
		if e == nil {
			return nil
		}
		elements = append(elements, e)

		if reachedEnd(tc, sink) {
			return nil
		}
		cur, _ := tc.Cur()
		switch cur.Kind {
		case token.Comma:
			tc.Advance()
			if next, ok := tc.Cur(); ok && next.Kind == token.RParen {
				tc.Advance()
				if len(elements) == 1 {
					return &ast.List{Elements: elements}
				}
				sink.Add(diagnostics.NotOneElementListShouldNotEndWithComma, &next,
					"list with more than one element should not end with a trailing comma")
				return nil
			}
			// more elements follow
		case token.RParen:
			tc.Advance()
			if len(elements) == 1 {
				if !direct {
					return nil
				}
				sink.Add(diagnostics.OneElementListShouldEndWithComma, &cur,
					"a one-element list must end with a trailing comma")
				return nil
			}
			return &ast.List{Elements: elements}
		default:
			sink.Add(diagnostics.UnexpectedTokenType, &cur, "expected ',' or ')' in list, found %s", cur.Kind)
			return nil
		}
	}
}

// closeBracketNotFound raises CloseBracketNotFound anchored at whatever
// token stands where a closing ")" was expected.
func closeBracketNotFound(tc *TokenCursor, sink *diagnostics.Sink) {
	cur, ok := tc.Cur()
	if !ok {
		sink.Add(diagnostics.CloseBracketNotFound, nil, "expected closing bracket but found end of input")
		return
	}
	sink.Add(diagnostics.CloseBracketNotFound, &cur, "expected closing bracket, found %s", cur.Kind)
}
