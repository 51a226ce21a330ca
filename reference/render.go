package reference

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/lalrdoc/grammar"
)

// OutcomeKind says what a rendered symbol contributes to its parent.
type OutcomeKind int

const (
	// Rendered symbols contribute their text.
	Rendered OutcomeKind = iota
	// Suppressed symbols contribute nothing; the alternative still renders.
	Suppressed
	// SuppressAlternative drops the whole enclosing alternative from the page.
	SuppressAlternative
)

func (k OutcomeKind) String() string {
	switch k {
	case Rendered:
		return "rendered"
	case Suppressed:
		return "suppressed"
	case SuppressAlternative:
		return "suppress-alternative"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of rendering one symbol. Text is only meaningful when
// Kind is Rendered.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

func rendered(text string) Outcome {
	return Outcome{Kind: Rendered, Text: text}
}

var (
	suppressed          = Outcome{Kind: Suppressed}
	suppressAlternative = Outcome{Kind: SuppressAlternative}
)

// Display returns the text of a Rendered outcome.
func (o Outcome) Display() (string, bool) {
	if o.Kind != Rendered {
		return "", false
	}
	return o.Text, true
}

// Render renders sym as it appears on the page of parent. g is the whole
// grammar, available to rules that look beyond the enclosing nonterminal.
func Render(sym grammar.Symbol, parent *grammar.Nonterminal, g grammar.Grammar) Outcome {
	return grammar.Visit[Outcome](sym, newRenderer(parent, g))
}

type renderer struct {
	params frozen.Set[string]
	// TODO: inline macro bodies from grammar instead of linking to the macro.
	grammar grammar.Grammar
}

func newRenderer(parent *grammar.Nonterminal, g grammar.Grammar) renderer {
	return renderer{
		params:  frozen.NewSet[string](parent.Params...),
		grammar: g,
	}
}

// renderAll renders symbols in order, dropping suppressed ones. The second
// result is false if any symbol asks for the alternative to be dropped.
func (r renderer) renderAll(symbols []grammar.Symbol) ([]string, bool) {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		o := grammar.Visit[Outcome](s, r)
		switch o.Kind {
		case SuppressAlternative:
			return nil, false
		case Rendered:
			out = append(out, o.Text)
		}
	}
	return out, true
}

func pageLink(name string) string {
	return fmt.Sprintf("[%s](%s)", name, pageFilename(name))
}

func anchorLink(name string) string {
	return fmt.Sprintf("[%s](#%s)", name, anchor(name))
}

func anchor(name string) string {
	return strings.ToLower(name)
}

func (r renderer) Expression(s grammar.Expression) Outcome {
	parts, ok := r.renderAll(s.Symbols)
	if !ok {
		return suppressAlternative
	}
	return rendered("(" + strings.Join(parts, " ") + ")")
}

func (r renderer) AmbiguousIdentifier(s grammar.AmbiguousIdentifier) Outcome {
	if r.params.Has(s.Name) {
		return rendered(anchorLink(s.Name))
	}
	return rendered(pageLink(s.Name))
}

func (r renderer) Terminal(s grammar.Terminal) Outcome {
	return rendered(s.Text)
}

func (r renderer) Nonterminal(s grammar.NonterminalRef) Outcome {
	return rendered(pageLink(s.Name))
}

// MacroInvocation links to the macro's page; the macro body is not inlined.
func (r renderer) MacroInvocation(s grammar.MacroInvocation) Outcome {
	args, ok := r.renderAll(s.Args)
	if !ok {
		return suppressAlternative
	}
	return rendered(pageLink(s.Name) + "&lt;" + strings.Join(args, ", ") + "&gt;")
}

var repeatMarkers = map[grammar.RepeatOp]string{
	grammar.ZeroOrMore: "*",
	grammar.OneOrMore:  "<sub>+</sub>",
	grammar.ZeroOrOne:  "<sub>?</sub>",
}

func (r renderer) Repetition(s grammar.Repetition) Outcome {
	inner := grammar.Visit[Outcome](s.Symbol, r)
	if text, ok := inner.Display(); ok {
		return rendered(text + repeatMarkers[s.Op])
	}
	return inner
}

func (r renderer) Choice(s grammar.Choice) Outcome {
	return grammar.Visit[Outcome](s.Symbol, r)
}

func (r renderer) NamedBinding(s grammar.NamedBinding) Outcome {
	return grammar.Visit[Outcome](s.Symbol, r)
}

func (r renderer) Lookahead(grammar.Lookahead) Outcome   { return suppressed }
func (r renderer) Lookbehind(grammar.Lookbehind) Outcome { return suppressed }

// Error marks an error-recovery path, which is not part of the documented
// language.
func (r renderer) Error(grammar.Error) Outcome { return suppressAlternative }
