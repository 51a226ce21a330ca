package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(symbols ...Symbol) Expression {
	return Expression{Symbols: symbols}
}

func mustExpr(t *testing.T, src string) Expression {
	t.Helper()
	expr, err := ParseExpr(t.Name(), src)
	require.NoError(t, err)
	return expr
}

func TestParseExpr(t *testing.T) {
	t.Parallel()

	for name, tt := range map[string]struct {
		input    string
		expected Expression
	}{
		"ident": {"T", seq(AmbiguousIdentifier{"T"})},
		"terminal": {`"+" r"[0-9]+"`, seq(
			Terminal{`"+"`},
			Terminal{`r"[0-9]+"`},
		)},
		"raw hash terminal": {`r#"a"b"#`, seq(Terminal{`r#"a"b"#`})},
		"group star": {"(T List<T>)*", seq(
			Repetition{
				Symbol: seq(AmbiguousIdentifier{"T"}, MacroInvocation{"List", []Symbol{AmbiguousIdentifier{"T"}}}),
				Op:     ZeroOrMore,
			},
		)},
		"macro args": {`Sep<T, ",">`, seq(
			MacroInvocation{"Sep", []Symbol{AmbiguousIdentifier{"T"}, Terminal{`","`}}},
		)},
		"stacked repeats": {"A+?", seq(
			Repetition{Symbol: Repetition{Symbol: AmbiguousIdentifier{"A"}, Op: OneOrMore}, Op: ZeroOrOne},
		)},
		"bindings": {`<l:Expr> "+" <Term>`, seq(
			NamedBinding{Name: "l", Symbol: AmbiguousIdentifier{"Expr"}},
			Terminal{`"+"`},
			Choice{Symbol: AmbiguousIdentifier{"Term"}},
		)},
		"binding with spaces": {`<l : Expr>`, seq(
			NamedBinding{Name: "l", Symbol: AmbiguousIdentifier{"Expr"}},
		)},
		"choice of sequence": {`<A B>`, seq(
			Choice{Symbol: seq(AmbiguousIdentifier{"A"}, AmbiguousIdentifier{"B"})},
		)},
		"lookaround": {"@L Id @R", seq(Lookahead{}, AmbiguousIdentifier{"Id"}, Lookbehind{})},
		"error":      {`"(" ! ")"`, seq(Terminal{`"("`}, Error{}, Terminal{`")"`})},
		"macro of macro": {"Comma<Box<T>>", seq(
			MacroInvocation{"Comma", []Symbol{MacroInvocation{"Box", []Symbol{AmbiguousIdentifier{"T"}}}}},
		)},
	} {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			expr, err := ParseExpr(name, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, expr)
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"(T", "T )", "Foo<T", "#", `"unterminated`} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseExpr("alt", input)
			assert.Error(t, err)
		})
	}
}

func TestExprString(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]string{
		"(T List<T>)*":          "((T List<T>)*)",
		`Sep<T, ",">`:           `(Sep<T, ",">)`,
		`<l:Expr> "+" <Term>?`:  `(<l:Expr> "+" <Term>?)`,
		"@L ! @R":               "(@L ! @R)",
		"A+":                    "(A+)",
		`<Comma<(A "," B)>>`:    `(<Comma<(A "," B)>>)`,
		`r"[a-z]+" Ident "x"?`:  `(r"[a-z]+" Ident "x"?)`,
		"<name:(A B)*>":         "(<name:(A B)*>)",
		"Option<Box<Expr>>":     "(Option<Box<Expr>>)",
		"(A) (B)":               "((A) (B))",
		"Keyword<\"fn\">? Body": "(Keyword<\"fn\">? Body)",
	} {
		assert.Equal(t, expected, mustExpr(t, input).String(), input)
	}
}
