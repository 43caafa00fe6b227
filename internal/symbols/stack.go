// Package symbols implements the lexically-scoped symbol stack the
// expression parser consults to resolve identifiers: push a Frame when
// entering a scope, pop it on exit, and Resolve searches frames
// innermost-first.
package symbols

import "github.com/doyoubi/minimoe/internal/ast"

// Frame is one lexical scope: the functions visible for mixfix invocation
// and the symbols (types, keywords, variables) resolvable by name within it.
type Frame struct {
	Functions []*ast.Function
	Symbols   []*ast.Symbol
}

// Stack is an ordered list of Frames, searched innermost-first.
type Stack struct {
	Frames []*Frame
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push adds f as the new innermost frame.
func (s *Stack) Push(f *Frame) {
	s.Frames = append(s.Frames, f)
}

// Pop discards the innermost frame. It is a no-op on an empty stack.
func (s *Stack) Pop() {
	if len(s.Frames) == 0 {
		return
	}
	s.Frames = s.Frames[:len(s.Frames)-1]
}

// Top returns the innermost frame, or nil if the stack is empty.
func (s *Stack) Top() *Frame {
	if len(s.Frames) == 0 {
		return nil
	}
	return s.Frames[len(s.Frames)-1]
}

// Resolve searches frames innermost-first, and within a frame in
// insertion order, returning the first Symbol named name. It returns nil
// when no frame defines that name.
func (s *Stack) Resolve(name string) *ast.Symbol {
	for i := len(s.Frames) - 1; i >= 0; i-- {
		for _, sym := range s.Frames[i].Symbols {
			if sym.Name == name {
				return sym
			}
		}
	}
	return nil
}

// Functions returns every function visible for mixfix invocation,
// innermost frame first, the order the expression parser's tryInvoke tries
// them in.
func (s *Stack) Functions() []*ast.Function {
	var all []*ast.Function
	for i := len(s.Frames) - 1; i >= 0; i-- {
		all = append(all, s.Frames[i].Functions...)
	}
	return all
}

var predefinedTypes = []struct {
	name string
	tag  ast.TypeTag
}{
	{"Array", ast.TypeArray},
	{"Boolean", ast.TypeBoolean},
	{"Float", ast.TypeFloat},
	{"Function", ast.TypeFunction},
	{"Integer", ast.TypeInteger},
	{"Null", ast.TypeNull},
	{"String", ast.TypeString},
	{"Tag", ast.TypeTagType},
}

var predefinedKeywords = []struct {
	name string
	kw   ast.KeywordKind
	tag  ast.TypeTag
}{
	{"null", ast.KeywordNull, ast.TypeNull},
	{"true", ast.KeywordTrue, ast.TypeBoolean},
	{"false", ast.KeywordFalse, ast.TypeBoolean},
}

// LoadPredefinedSymbol returns a fresh Frame holding the language's
// built-in type symbols (Array, Boolean, Float, Function, Integer, Null,
// String, Tag) and the null/true/false keyword symbols. Each call builds a
// new Frame, so frames from separate calls share no state.
func LoadPredefinedSymbol() *Frame {
	f := &Frame{}
	for _, t := range predefinedTypes {
		f.Symbols = append(f.Symbols, &ast.Symbol{
			Name:    t.name,
			Kind:    ast.SymbolTypeKind,
			TypeTag: t.tag,
		})
	}
	for _, k := range predefinedKeywords {
		f.Symbols = append(f.Symbols, &ast.Symbol{
			Name:    k.name,
			Kind:    ast.SymbolKeywordKind,
			Keyword: k.kw,
			TypeTag: k.tag,
		})
	}
	return f
}
