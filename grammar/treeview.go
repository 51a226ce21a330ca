package grammar

import (
	"fmt"

	"github.com/arr-ai/lalrdoc/gotree"
)

// TreeView renders g as an indented tree, one node per item, alternative and
// symbol.
func TreeView(rootname string, g Grammar) string {
	root := gotree.New(rootname)
	for _, item := range g.Items {
		switch item := item.(type) {
		case *Nonterminal:
			root.AddTree(nonterminalTree(item))
		case Other:
			root.Add(fmt.Sprintf("%s (skipped)", item.Kind))
		}
	}
	return root.Print()
}

func nonterminalTree(nt *Nonterminal) gotree.Tree {
	tree := gotree.New(nt.Title())
	for _, doc := range nt.DocComments {
		tree.Add(doc)
	}
	for i, alt := range nt.Alternatives {
		x := gotree.New(fmt.Sprintf("(%d) %s", i+1, alt.Expr))
		for _, ann := range alt.Annotations {
			x.Add("#[" + ann.String() + "]")
		}
		for _, doc := range alt.DocComments {
			x.Add(doc)
		}
		x.AddTree(Visit[gotree.Tree](alt.Expr, symbolTree{}))
		tree.AddTree(x)
	}
	return tree
}

// symbolTree builds one tree node per symbol, labelled by kind.
type symbolTree struct{}

func (t symbolTree) node(label string, children ...Symbol) gotree.Tree {
	x := gotree.New(label)
	for _, c := range children {
		x.AddTree(Visit[gotree.Tree](c, t))
	}
	return x
}

func (t symbolTree) Expression(s Expression) gotree.Tree {
	return t.node("expr", s.Symbols...)
}
func (t symbolTree) AmbiguousIdentifier(s AmbiguousIdentifier) gotree.Tree {
	return t.node("id " + s.Name)
}
func (t symbolTree) Terminal(s Terminal) gotree.Tree {
	return t.node("terminal " + s.Text)
}
func (t symbolTree) Nonterminal(s NonterminalRef) gotree.Tree {
	return t.node("nonterminal " + s.Name)
}
func (t symbolTree) MacroInvocation(s MacroInvocation) gotree.Tree {
	return t.node("macro "+s.Name, s.Args...)
}
func (t symbolTree) Repetition(s Repetition) gotree.Tree {
	return t.node("repeat "+s.Op.String(), s.Symbol)
}
func (t symbolTree) Choice(s Choice) gotree.Tree {
	return t.node("choice", s.Symbol)
}
func (t symbolTree) NamedBinding(s NamedBinding) gotree.Tree {
	return t.node("name "+s.Name, s.Symbol)
}
func (t symbolTree) Lookahead(Lookahead) gotree.Tree   { return t.node("lookahead") }
func (t symbolTree) Lookbehind(Lookbehind) gotree.Tree { return t.node("lookbehind") }
func (t symbolTree) Error(Error) gotree.Tree           { return t.node("error") }
