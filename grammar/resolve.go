package grammar

import (
	"github.com/arr-ai/frozen"
)

// Resolve returns a copy of g in which bare identifiers naming a declared
// nonterminal, and not shadowed by a type parameter, become NonterminalRefs.
// g itself is not modified.
func Resolve(g Grammar) Grammar {
	nts := g.Nonterminals()
	names := frozen.NewSetBuilder[string](len(nts))
	for _, nt := range nts {
		names.Add(nt.Name)
	}
	declared := names.Finish()

	out := Grammar{Items: make([]Item, 0, len(g.Items))}
	for _, item := range g.Items {
		nt, ok := item.(*Nonterminal)
		if !ok {
			out.Items = append(out.Items, item)
			continue
		}
		r := resolver{declared: declared, params: frozen.NewSet[string](nt.Params...)}
		alts := make([]Alternative, 0, len(nt.Alternatives))
		for _, alt := range nt.Alternatives {
			alt.Expr = Visit[Symbol](alt.Expr, r)
			alts = append(alts, alt)
		}
		resolved := *nt
		resolved.Alternatives = alts
		out.Items = append(out.Items, &resolved)
	}
	return out
}

type resolver struct {
	declared frozen.Set[string]
	params   frozen.Set[string]
}

func (r resolver) all(symbols []Symbol) []Symbol {
	out := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, Visit[Symbol](s, r))
	}
	return out
}

func (r resolver) Expression(s Expression) Symbol {
	return Expression{Symbols: r.all(s.Symbols)}
}

func (r resolver) AmbiguousIdentifier(s AmbiguousIdentifier) Symbol {
	if !r.params.Has(s.Name) && r.declared.Has(s.Name) {
		return NonterminalRef(s)
	}
	return s
}

func (r resolver) Terminal(s Terminal) Symbol          { return s }
func (r resolver) Nonterminal(s NonterminalRef) Symbol { return s }

func (r resolver) MacroInvocation(s MacroInvocation) Symbol {
	return MacroInvocation{Name: s.Name, Args: r.all(s.Args)}
}

func (r resolver) Repetition(s Repetition) Symbol {
	return Repetition{Symbol: Visit[Symbol](s.Symbol, r), Op: s.Op}
}

func (r resolver) Choice(s Choice) Symbol {
	return Choice{Symbol: Visit[Symbol](s.Symbol, r)}
}

func (r resolver) NamedBinding(s NamedBinding) Symbol {
	return NamedBinding{Name: s.Name, Symbol: Visit[Symbol](s.Symbol, r)}
}

func (r resolver) Lookahead(s Lookahead) Symbol   { return s }
func (r resolver) Lookbehind(s Lookbehind) Symbol { return s }
func (r resolver) Error(s Error) Symbol           { return s }
