package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer tokenises symbol expressions. Rule order matters: terminals before
// identifiers so that r"..." is not read as the identifier r, and bindings and
// macro names before plain identifiers.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Terminal", Pattern: `r#".*?"#|r?"(?:[^"\\]|\\.)*"`},
	{Name: "Binding", Pattern: `[A-Za-z_][A-Za-z0-9_]*\s*:`},
	{Name: "Macro", Pattern: `[A-Za-z_][A-Za-z0-9_]*<`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Lookaround", Pattern: `@[LR]`},
	{Name: "Punct", Pattern: `[()<>,*+?!]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type exprAST struct {
	Symbols []*symbolAST `@@*`
}

type symbolAST struct {
	Atom    *atomAST `@@`
	Repeats []string `@( "*" | "+" | "?" )*`
}

type atomAST struct {
	Group      *exprAST  `  "(" @@ ")"`
	Angle      *angleAST `| "<" @@ ">"`
	Macro      *macroAST `| @@`
	Terminal   *string   `| @Terminal`
	Ident      *string   `| @Ident`
	Lookaround *string   `| @Lookaround`
	Error      bool      `| @"!"`
}

type angleAST struct {
	Binding *string  `@Binding?`
	Body    *exprAST `@@`
}

type macroAST struct {
	Name string       `@Macro`
	Args []*symbolAST `( @@ ( "," @@ )* )? ">"`
}

var exprParser = participle.MustBuild[exprAST](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// ParseExpr parses the symbol expression of one alternative. The result is
// always an Expression wrapping the top-level symbols. The filename is only
// used in error positions.
func ParseExpr(filename, src string) (Expression, error) {
	ast, err := exprParser.ParseString(filename, src)
	if err != nil {
		return Expression{}, err
	}
	return ast.expression(), nil
}

func (e *exprAST) expression() Expression {
	symbols := make([]Symbol, 0, len(e.Symbols))
	for _, s := range e.Symbols {
		symbols = append(symbols, s.symbol())
	}
	return Expression{Symbols: symbols}
}

// single unwraps a one-symbol body, as in `<Foo>` or `<x:Foo>`.
func (e *exprAST) single() Symbol {
	if len(e.Symbols) == 1 {
		return e.Symbols[0].symbol()
	}
	return e.expression()
}

func (s *symbolAST) symbol() Symbol {
	sym := s.Atom.symbol()
	for _, op := range s.Repeats {
		sym = Repetition{Symbol: sym, Op: repeatOps[op]}
	}
	return sym
}

var repeatOps = map[string]RepeatOp{
	"*": ZeroOrMore,
	"+": OneOrMore,
	"?": ZeroOrOne,
}

func (a *atomAST) symbol() Symbol {
	switch {
	case a.Group != nil:
		return a.Group.expression()
	case a.Angle != nil:
		inner := a.Angle.Body.single()
		if a.Angle.Binding != nil {
			name := strings.TrimSpace(strings.TrimSuffix(*a.Angle.Binding, ":"))
			return NamedBinding{Name: name, Symbol: inner}
		}
		return Choice{Symbol: inner}
	case a.Macro != nil:
		args := make([]Symbol, 0, len(a.Macro.Args))
		for _, arg := range a.Macro.Args {
			args = append(args, arg.symbol())
		}
		return MacroInvocation{Name: strings.TrimSuffix(a.Macro.Name, "<"), Args: args}
	case a.Terminal != nil:
		return Terminal{Text: *a.Terminal}
	case a.Ident != nil:
		return AmbiguousIdentifier{Name: *a.Ident}
	case a.Lookaround != nil:
		if *a.Lookaround == "@L" {
			return Lookahead{}
		}
		return Lookbehind{}
	case a.Error:
		return Error{}
	}
	panic("empty atom")
}
