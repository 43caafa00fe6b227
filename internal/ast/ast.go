// Package ast holds the declaration and expression trees the parser
// builds, plus the Symbol value a resolved identifier carries.
//
// Every node exposes ToLog(), a pretty-printing contract carried over from
// the reference implementation's virtual ToLog() methods: a stable,
// human-readable rendering used by tests to assert on parse results
// without comparing whole tree structures field by field.
package ast

import "strings"

// ---------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------

// Using is a `using <module>` declaration.
type Using struct {
	ModuleName string
}

func (u *Using) ToLog() string { return "Using(" + u.ModuleName + ")" }

// Tag is a `tag <name>` declaration.
type Tag struct {
	Name string
}

func (t *Tag) ToLog() string { return "Tag(" + t.Name + ")" }

// TypeDecl is a `type <name> ... end` declaration; Members holds the
// member identifiers in declaration order.
type TypeDecl struct {
	Name    string
	Members []string
}

func (t *TypeDecl) ToLog() string {
	parts := append([]string{t.Name}, t.Members...)
	return "Type(" + strings.Join(parts, ", ") + ")"
}

// ArgKind is the qualifier an ArgDecl's bracketed argument carries, one of
// the four reserved-word qualifiers or Normal for a bare identifier.
type ArgKind int

const (
	ArgNormal ArgKind = iota
	ArgList
	ArgBlockBody
	ArgDeferred
	ArgAssignable
)

func (k ArgKind) String() string {
	switch k {
	case ArgList:
		return "List"
	case ArgBlockBody:
		return "BlockBody"
	case ArgDeferred:
		return "Deferred"
	case ArgAssignable:
		return "Assignable"
	default:
		return "Normal"
	}
}

// ArgDecl is a single `(name)` or `(qualifier name)` function argument
// declaration.
type ArgDecl struct {
	Kind ArgKind
	Name string
}

func (a *ArgDecl) ToLog() string { return a.Kind.String() + "(" + a.Name + ")" }

// FragmentKind distinguishes a function name fragment from an argument
// fragment inside a mixfix function header.
type FragmentKind int

const (
	FragName FragmentKind = iota
	FragArgument
)

// Fragment is one piece of a function's mixfix header: either a bare
// name token or a bracketed argument declaration.
type Fragment struct {
	Kind FragmentKind
	Name string
	Arg  *ArgDecl
}

// FunctionKind is the reserved word a function declaration opens with.
type FunctionKind int

const (
	FuncPhrase FunctionKind = iota
	FuncSentence
	FuncBlock
)

func (k FunctionKind) String() string {
	switch k {
	case FuncSentence:
		return "Sentence"
	case FuncBlock:
		return "Block"
	default:
		return "Phrase"
	}
}

// Function is a `phrase|sentence|block ... end` declaration. BodyStart and
// BodyEnd are line indices into the owning CodeFile's Lines, delimiting
// the half-open body range [BodyStart, BodyEnd) the body-extent algorithm
// found; the body lines themselves are never descended into by the
// declaration parser.
type Function struct {
	Kind      FunctionKind
	Fragments []Fragment
	Arguments []ArgDecl
	Alias     string // empty when the declaration carries no ": alias"
	BodyStart int
	BodyEnd   int
}

func (f *Function) ToLog() string {
	var nameParts []string
	var argParts []string
	for _, frag := range f.Fragments {
		switch frag.Kind {
		case FragName:
			nameParts = append(nameParts, frag.Name)
		case FragArgument:
			argParts = append(argParts, frag.Arg.Name)
		}
	}
	lines := f.BodyEnd - f.BodyStart
	return f.Kind.String() + ":" + strings.Join(nameParts, "_") + "(" + strings.Join(argParts, ", ") + "){" +
		itoa(lines) + "}"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Module is the declaration parser's top-level output: the usings, tags,
// types and functions found across every line of a CodeFile, in the order
// they were successfully parsed.
type Module struct {
	Name      string
	Usings    []Using
	Tags      []Tag
	Types     []TypeDecl
	Functions []Function
}

// ---------------------------------------------------------------------
// Symbol — a resolved identifier's meaning, shared by the symbol stack and
// by Expression's SymbolRef variant. User-defined types are referenced by
// name (an index into the owning Module's Types), not by pointer, so this
// package never needs to import the type that owns a Module.
// ---------------------------------------------------------------------

// SymbolKind is the broad category a Symbol belongs to.
type SymbolKind int

const (
	SymbolTypeKind SymbolKind = iota
	SymbolKeywordKind
	SymbolVariableKind
)

// TypeTag is the builtin type a SymbolTypeKind Symbol denotes, or
// TypeUserDefined when it names a user Type declaration instead.
type TypeTag int

const (
	TypeArray TypeTag = iota
	TypeBoolean
	TypeFloat
	TypeFunction
	TypeInteger
	TypeNull
	TypeString
	TypeTagType // the built-in "Tag" type itself
	TypeUserDefined
)

func (t TypeTag) String() string {
	switch t {
	case TypeArray:
		return "Array"
	case TypeBoolean:
		return "Boolean"
	case TypeFloat:
		return "Float"
	case TypeFunction:
		return "Function"
	case TypeInteger:
		return "Integer"
	case TypeNull:
		return "Null"
	case TypeString:
		return "String"
	case TypeTagType:
		return "Tag"
	default:
		return "UserDefined"
	}
}

// KeywordKind is the built-in keyword a SymbolKeywordKind Symbol denotes.
// Only Null, True and False are ever populated by LoadPredefinedSymbol;
// the remaining members describe contextual keywords a future statement
// grammar would introduce, and are unused by this front end — see the
// Open Question on variable declarations.
type KeywordKind int

const (
	KeywordNull KeywordKind = iota
	KeywordTrue
	KeywordFalse
	KeywordResult
	KeywordIf
	KeywordElse
	KeywordContinuation
	KeywordVar
	KeywordGetItem
	KeywordSize
	KeywordType
	KeywordRedirectTo
)

func (k KeywordKind) String() string {
	switch k {
	case KeywordTrue:
		return "true"
	case KeywordFalse:
		return "false"
	case KeywordResult:
		return "result"
	case KeywordIf:
		return "if"
	case KeywordElse:
		return "else"
	case KeywordContinuation:
		return "continuation"
	case KeywordVar:
		return "var"
	case KeywordGetItem:
		return "getitem"
	case KeywordSize:
		return "size"
	case KeywordType:
		return "type"
	case KeywordRedirectTo:
		return "redirectto"
	default:
		return "null"
	}
}

// Symbol is a resolved identifier: a builtin or user-defined type, a
// built-in keyword value, or a variable. There is no parser for variable
// declarations in this front end (an Open Question left unresolved, per
// spec.md §9); VariableName exists so tests and future callers can push a
// variable symbol by hand.
type Symbol struct {
	Name string

	Kind         SymbolKind
	TypeTag      TypeTag
	UserTypeName string // valid when TypeTag == TypeUserDefined
	Keyword      KeywordKind
	VariableName string
}

func (s *Symbol) ToLog() string {
	switch s.Kind {
	case SymbolTypeKind:
		if s.TypeTag == TypeUserDefined {
			return s.UserTypeName
		}
		return s.TypeTag.String()
	case SymbolKeywordKind:
		return s.Keyword.String()
	default:
		return "(" + s.VariableName + ")"
	}
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// Expr is any parsed expression node.
type Expr interface {
	ToLog() string
}

// LiteralKind is the scalar kind a Literal token carries.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitString
)

// Literal is a scalar integer, float or (already-unescaped) string value.
type Literal struct {
	Kind LiteralKind
	Text string
}

func (l *Literal) ToLog() string {
	if l.Kind == LitString {
		return `"` + l.Text + `"`
	}
	return l.Text
}

// UnaryOp is the operator a Unary expression applies.
type UnaryOp int

const (
	UnaryPositive UnaryOp = iota
	UnaryNegative
	UnaryNot
)

func (o UnaryOp) String() string {
	switch o {
	case UnaryNegative:
		return "-"
	case UnaryNot:
		return "not"
	default:
		return "+"
	}
}

// Unary is a prefix `+`, `-` or `not` expression.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (u *Unary) ToLog() string { return u.Op.String() + "(" + u.Operand.ToLog() + ")" }

// BinaryOp is the operator a Binary expression folds two operands with.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryLT
	BinaryGT
	BinaryLE
	BinaryGE
	BinaryEQ
	BinaryNE
	BinaryAnd
	BinaryOr
)

func (o BinaryOp) String() string {
	switch o {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryMod:
		return "%"
	case BinaryLT:
		return "<"
	case BinaryGT:
		return ">"
	case BinaryLE:
		return "<="
	case BinaryGE:
		return ">="
	case BinaryEQ:
		return "=="
	case BinaryNE:
		return "<>"
	case BinaryAnd:
		return "and"
	default:
		return "or"
	}
}

// Binary is a `lhs op rhs` expression, built left-associatively by the
// binary folder.
type Binary struct {
	Op  BinaryOp
	LHS Expr
	RHS Expr
}

func (b *Binary) ToLog() string {
	return b.Op.String() + "(" + b.LHS.ToLog() + ", " + b.RHS.ToLog() + ")"
}

// SymbolRef is an expression built from a single resolved identifier: a
// type name, a keyword value, or a variable reference.
type SymbolRef struct {
	Resolved *Symbol
}

func (s *SymbolRef) ToLog() string { return s.Resolved.ToLog() }

// Invoke is a mixfix function call: Callee's fragments interleave the
// matched name tokens with Arguments, one per argument fragment.
type Invoke struct {
	Callee    *Function
	Arguments []Expr
}

func (i *Invoke) ToLog() string {
	var nameParts []string
	for _, frag := range i.Callee.Fragments {
		if frag.Kind == FragName {
			nameParts = append(nameParts, frag.Name)
		}
	}
	argParts := make([]string, len(i.Arguments))
	for idx, a := range i.Arguments {
		argParts[idx] = a.ToLog()
	}
	return strings.Join(nameParts, "_") + "(" + strings.Join(argParts, ", ") + ")"
}

// List is a parenthesized list literal.
type List struct {
	Elements []Expr
}

func (l *List) ToLog() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.ToLog()
	}
	return "List(" + strings.Join(parts, ", ") + ")"
}
