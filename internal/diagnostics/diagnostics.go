// Package diagnostics carries the closed set of compiler diagnostics the
// lexer and parser can raise, plus the accumulating Sink both stages write
// into. There is no severity ladder: every Kind here is a reportable
// condition found while scanning or parsing a single file.
package diagnostics

import (
	"fmt"

	"github.com/doyoubi/minimoe/internal/token"
)

// Phase names which stage of the front end raised a Diagnostic.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

// Kind is the closed enumeration of diagnostics the front end can produce.
type Kind string

const (
	UnexpectedChar    Kind = "UnexpectedChar"
	InvalidFloat      Kind = "InvalidFloat"
	IncompleteString  Kind = "IncompleteString"
	InvalidEscapeChar Kind = "InvalidEscapeChar"

	NoMoreToken                           Kind = "NoMoreToken"
	NoMoreLine                            Kind = "NoMoreLine"
	CloseBracketNotFound                  Kind = "CloseBracketNotFound"
	CanNotResolveSymbol                   Kind = "CanNotResolveSymbol"
	UnexpectedTokenType                   Kind = "UnexpectedTokenType"
	WrongFunctionName                     Kind = "WrongFunctionName"
	OneElementListShouldEndWithComma      Kind = "OneElementListShouldEndWithComma"
	NotOneElementListShouldNotEndWithComma Kind = "NotOneElementListShouldNotEndWithComma"
	CanNotParseLeftToken                  Kind = "CanNotParseLeftToken"
	InvalidArgumentDeclaration            Kind = "InvalidArgumentDeclaration"
	ExpectEndForFunctionDeclaration       Kind = "ExpectEndForFunctionDeclaration"

	// NotImplemented covers the cps/category declaration forms the
	// distillation leaves unimplemented; the dispatcher records this and
	// skips the line rather than guessing a shape for them.
	NotImplemented Kind = "NotImplemented"
)

func (k Kind) phase() Phase {
	switch k {
	case UnexpectedChar, InvalidFloat, IncompleteString, InvalidEscapeChar:
		return PhaseLexer
	default:
		return PhaseParser
	}
}

// Diagnostic is one reportable condition, anchored at the token where the
// scanner or parser was standing when it gave up (or nil, for the few
// conditions with no sensible anchor — e.g. running out of lines).
type Diagnostic struct {
	Kind    Kind
	Anchor  *token.Token
	Message string
}

func (d Diagnostic) String() string {
	loc := "?:?"
	if d.Anchor != nil {
		loc = fmt.Sprintf("%d:%d", d.Anchor.Row, d.Anchor.Column)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Kind.phase(), loc, d.Message)
}

// Sink is the append-only diagnostic accumulator threaded through lexing
// and parsing. It is the "externally owned diagnostic list" the parser
// receives and the lexer seeds.
type Sink struct {
	Items []Diagnostic
}

// NewSink returns an empty Sink ready to accumulate diagnostics.
func NewSink() *Sink {
	return &Sink{}
}

// FromItems returns a Sink that continues appending after the given
// already-collected diagnostics, e.g. handing the parser stage a sink
// that keeps accumulating onto what the lexer stage already produced.
func FromItems(items []Diagnostic) *Sink {
	return &Sink{Items: items}
}

// Add anchors a new Diagnostic and appends it. anchor may be nil.
func (s *Sink) Add(kind Kind, anchor *token.Token, format string, args ...interface{}) {
	s.Items = append(s.Items, Diagnostic{
		Kind:    kind,
		Anchor:  anchor,
		Message: fmt.Sprintf(format, args...),
	})
}

// Merge appends every item from other onto s, in order.
func (s *Sink) Merge(other *Sink) {
	if other == nil {
		return
	}
	s.Items = append(s.Items, other.Items...)
}
