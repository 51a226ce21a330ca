package grammar

import "strings"

// Grammar is the root of a parsed grammar definition.
type Grammar struct {
	Items []Item
}

// Item is a top-level grammar item. Only *Nonterminal items take part in
// reference rendering.
type Item interface {
	isItem()
}

// Other is an item the reference does not render, such as a use declaration
// or an extern block.
type Other struct {
	Kind string
	Text string
}

// Nonterminal is a named production with one or more alternatives.
type Nonterminal struct {
	Name         string
	Params       []string
	DocComments  []string
	Alternatives []Alternative
}

// Alternative is one production choice of a nonterminal.
type Alternative struct {
	Expr        Symbol
	Annotations []Annotation
	DocComments []string
}

// Annotation is a `#[key]` or `#[key=value]` attribute on an alternative.
type Annotation struct {
	Key   string
	Value *string
}

func (Other) isItem()        {}
func (*Nonterminal) isItem() {}

// Nonterminals returns the nonterminal items in declaration order.
func (g Grammar) Nonterminals() []*Nonterminal {
	out := make([]*Nonterminal, 0, len(g.Items))
	for _, item := range g.Items {
		if nt, ok := item.(*Nonterminal); ok {
			out = append(out, nt)
		}
	}
	return out
}

// Title is the nonterminal's name followed by its type parameters, e.g.
// `List<T>`.
func (n *Nonterminal) Title() string {
	if len(n.Params) == 0 {
		return n.Name
	}
	return n.Name + "<" + strings.Join(n.Params, ", ") + ">"
}

// Annotation returns the first annotation with the given key.
func (a Alternative) Annotation(key string) (Annotation, bool) {
	for _, ann := range a.Annotations {
		if ann.Key == key {
			return ann, true
		}
	}
	return Annotation{}, false
}

// ParseAnnotation reads `key` or `key=value`.
func ParseAnnotation(s string) Annotation {
	key, value, found := strings.Cut(s, "=")
	ann := Annotation{Key: strings.TrimSpace(key)}
	if found {
		v := strings.TrimSpace(value)
		ann.Value = &v
	}
	return ann
}

func (a Annotation) String() string {
	if a.Value == nil {
		return a.Key
	}
	return a.Key + "=" + *a.Value
}
