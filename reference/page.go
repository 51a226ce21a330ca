package reference

import (
	"fmt"
	"strings"

	"github.com/arr-ai/lalrdoc/grammar"
)

// IndexName is the page listing every nonterminal.
const IndexName = "SUMMARY"

// reservedSuffix renames a nonterminal page that would collide with the
// index. It cannot appear in an identifier, so the new name is free too.
const reservedSuffix = "-page"

// Page is one rendered markdown document.
type Page struct {
	Name  string
	Body  string
	index bool
}

// Filename is the page's file name, relative to the book's source directory.
func (p Page) Filename() string {
	if p.index {
		return IndexName + ".md"
	}
	return pageFilename(p.Name)
}

// pageFilename is the file holding the page of the named nonterminal.
// Case is ignored when checking for the index name, since mdBook sources
// often live on case-insensitive file systems.
func pageFilename(name string) string {
	if strings.EqualFold(name, IndexName) {
		return name + reservedSuffix + ".md"
	}
	return name + ".md"
}

// escapeAngles keeps mdBook from reading `<T>` as an HTML tag.
var escapeAngles = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// stripDocMarker removes the `///` doc comment marker and one following space.
func stripDocMarker(line string) string {
	line = strings.TrimPrefix(line, "///")
	return strings.TrimPrefix(line, " ")
}

// AssemblePage renders the reference page of nt.
func AssemblePage(nt *grammar.Nonterminal, g grammar.Grammar) Page {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n", escapeAngles.Replace(nt.Title()))
	for _, param := range nt.Params {
		fmt.Fprintf(&sb, "\n## %s\n\nType parameter.\n", param)
	}

	if alts := assembleAlternatives(nt, g); len(alts) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(alts, "\n>\n"))
		sb.WriteString("\n")
	}

	if len(nt.DocComments) > 0 {
		sb.WriteString("\n")
		for _, doc := range nt.DocComments {
			sb.WriteString(stripDocMarker(doc) + "\n")
		}
	}

	return Page{Name: nt.Name, Body: sb.String()}
}

// assembleAlternatives returns one blockquote entry per rendered alternative.
// Dropped alternatives keep their number so the remaining numbers match the
// grammar source.
func assembleAlternatives(nt *grammar.Nonterminal, g grammar.Grammar) []string {
	numbered := len(nt.Alternatives) > 1
	out := make([]string, 0, len(nt.Alternatives))
	for i, alt := range nt.Alternatives {
		outcome := Render(alt.Expr, nt, g)
		if outcome.Kind == SuppressAlternative {
			continue
		}
		text, _ := outcome.Display()

		var sb strings.Builder
		sb.WriteString("> ")
		if numbered {
			fmt.Fprintf(&sb, "(%d) ", i+1)
		}
		sb.WriteString(text)
		if prec, has := ExtractPrecedence(alt); has {
			if desc := prec.String(); desc != "" {
				fmt.Fprintf(&sb, " <sub>%s</sub>", desc)
			}
		}
		if len(alt.DocComments) > 0 {
			sb.WriteString("\n>")
		}
		for _, doc := range alt.DocComments {
			sb.WriteString("\n>")
			if line := stripDocMarker(doc); line != "" {
				sb.WriteString(" " + line)
			}
		}
		out = append(out, sb.String())
	}
	return out
}

// AssembleIndex renders the summary page linking every named page in order.
func AssembleIndex(names []string) Page {
	var sb strings.Builder
	sb.WriteString("# Summary\n\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", pageLink(name))
	}
	return Page{Name: IndexName, Body: sb.String(), index: true}
}
