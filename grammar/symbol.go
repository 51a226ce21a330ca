package grammar

import (
	"fmt"
	"strings"
)

// Symbol is one node of an alternative's expression tree. The set of symbol
// kinds is closed: every kind has a method on Visitor.
type Symbol interface {
	fmt.Stringer
	isSymbol()
}

type (
	// Expression groups a sequence of symbols.
	Expression struct {
		Symbols []Symbol
	}

	// AmbiguousIdentifier is a bare name. It refers to a type parameter of the
	// enclosing nonterminal if one matches, otherwise to a nonterminal.
	AmbiguousIdentifier struct {
		Name string
	}

	// Terminal is a literal token, kept as written (quotes included).
	Terminal struct {
		Text string
	}

	// NonterminalRef is a resolved reference to another nonterminal.
	NonterminalRef struct {
		Name string
	}

	MacroInvocation struct {
		Name string
		Args []Symbol
	}

	Repetition struct {
		Symbol Symbol
		Op     RepeatOp
	}

	// Choice is `<sym>`.
	Choice struct {
		Symbol Symbol
	}

	// NamedBinding is `<name:sym>`.
	NamedBinding struct {
		Name   string
		Symbol Symbol
	}

	// Lookahead is `@L`.
	Lookahead struct{}

	// Lookbehind is `@R`.
	Lookbehind struct{}

	// Error is the `!` error-recovery symbol.
	Error struct{}
)

// RepeatOp is a repetition operator.
type RepeatOp int

const (
	ZeroOrMore RepeatOp = iota
	OneOrMore
	ZeroOrOne
)

func (op RepeatOp) String() string {
	switch op {
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	case ZeroOrOne:
		return "?"
	}
	panic(fmt.Errorf("unexpected repeat op: %d", int(op)))
}

// Visitor has one method per symbol kind. Adding a symbol kind means adding a
// method here, which breaks every implementation until it handles the new kind.
type Visitor[R any] interface {
	Expression(Expression) R
	AmbiguousIdentifier(AmbiguousIdentifier) R
	Terminal(Terminal) R
	Nonterminal(NonterminalRef) R
	MacroInvocation(MacroInvocation) R
	Repetition(Repetition) R
	Choice(Choice) R
	NamedBinding(NamedBinding) R
	Lookahead(Lookahead) R
	Lookbehind(Lookbehind) R
	Error(Error) R
}

// Visit dispatches sym to the matching method of v.
func Visit[R any](sym Symbol, v Visitor[R]) R {
	switch s := sym.(type) {
	case Expression:
		return v.Expression(s)
	case AmbiguousIdentifier:
		return v.AmbiguousIdentifier(s)
	case Terminal:
		return v.Terminal(s)
	case NonterminalRef:
		return v.Nonterminal(s)
	case MacroInvocation:
		return v.MacroInvocation(s)
	case Repetition:
		return v.Repetition(s)
	case Choice:
		return v.Choice(s)
	case NamedBinding:
		return v.NamedBinding(s)
	case Lookahead:
		return v.Lookahead(s)
	case Lookbehind:
		return v.Lookbehind(s)
	case Error:
		return v.Error(s)
	default:
		panic(fmt.Errorf("unexpected symbol type: %v %[1]T", sym))
	}
}

func (Expression) isSymbol()          {}
func (AmbiguousIdentifier) isSymbol() {}
func (Terminal) isSymbol()            {}
func (NonterminalRef) isSymbol()      {}
func (MacroInvocation) isSymbol()     {}
func (Repetition) isSymbol()          {}
func (Choice) isSymbol()              {}
func (NamedBinding) isSymbol()        {}
func (Lookahead) isSymbol()           {}
func (Lookbehind) isSymbol()          {}
func (Error) isSymbol()               {}

// sourcePrinter writes symbols back in grammar syntax.
type sourcePrinter struct{}

func (p sourcePrinter) join(symbols []Symbol, sep string) string {
	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, Visit[string](s, p))
	}
	return strings.Join(parts, sep)
}

func (p sourcePrinter) Expression(s Expression) string {
	return "(" + p.join(s.Symbols, " ") + ")"
}
func (sourcePrinter) AmbiguousIdentifier(s AmbiguousIdentifier) string { return s.Name }
func (sourcePrinter) Terminal(s Terminal) string                       { return s.Text }
func (sourcePrinter) Nonterminal(s NonterminalRef) string              { return s.Name }
func (p sourcePrinter) MacroInvocation(s MacroInvocation) string {
	return s.Name + "<" + p.join(s.Args, ", ") + ">"
}
func (p sourcePrinter) Repetition(s Repetition) string {
	return Visit[string](s.Symbol, p) + s.Op.String()
}
func (p sourcePrinter) Choice(s Choice) string {
	return "<" + Visit[string](s.Symbol, p) + ">"
}
func (p sourcePrinter) NamedBinding(s NamedBinding) string {
	return "<" + s.Name + ":" + Visit[string](s.Symbol, p) + ">"
}
func (sourcePrinter) Lookahead(Lookahead) string   { return "@L" }
func (sourcePrinter) Lookbehind(Lookbehind) string { return "@R" }
func (sourcePrinter) Error(Error) string           { return "!" }

func (s Expression) String() string          { return sourcePrinter{}.Expression(s) }
func (s AmbiguousIdentifier) String() string { return s.Name }
func (s Terminal) String() string            { return s.Text }
func (s NonterminalRef) String() string      { return s.Name }
func (s MacroInvocation) String() string     { return sourcePrinter{}.MacroInvocation(s) }
func (s Repetition) String() string          { return sourcePrinter{}.Repetition(s) }
func (s Choice) String() string              { return sourcePrinter{}.Choice(s) }
func (s NamedBinding) String() string        { return sourcePrinter{}.NamedBinding(s) }
func (Lookahead) String() string             { return "@L" }
func (Lookbehind) String() string            { return "@R" }
func (Error) String() string                 { return "!" }
