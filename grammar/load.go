package grammar

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// NonterminalKind is the item kind that produces reference pages.
const NonterminalKind = "nonterminal"

type document struct {
	Items []itemDoc `yaml:"items"`
}

type itemDoc struct {
	Kind         string           `yaml:"kind"`
	Name         string           `yaml:"name"`
	Params       []string         `yaml:"params"`
	Doc          []string         `yaml:"doc"`
	Alternatives []alternativeDoc `yaml:"alternatives"`
	Text         string           `yaml:"text"`
}

type alternativeDoc struct {
	// Expr stays a node so that a null value, which is what an unquoted `!`
	// decodes to, can be told apart from an empty string.
	Expr        yaml.Node `yaml:"expr"`
	Annotations []string  `yaml:"annotations"`
	Doc         []string  `yaml:"doc"`
}

var errMissingExpr = errors.New("missing expression (quote expressions starting with '!')")

// source returns the expression text of the alternative.
func (a alternativeDoc) source() (string, error) {
	switch {
	case a.Expr.Kind == 0 || a.Expr.ShortTag() == "!!null":
		return "", errMissingExpr
	case a.Expr.Kind != yaml.ScalarNode:
		return "", fmt.Errorf("line %d: expression must be a string", a.Expr.Line)
	}
	return a.Expr.Value, nil
}

// Load reads a grammar document from path. A read failure is returned as is;
// syntax problems are returned as *ParseError.
func Load(path string) (Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Grammar{}, err
	}
	return Parse(path, data)
}

// Parse decodes a grammar document and resolves its identifiers.
func Parse(filename string, data []byte) (Grammar, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Grammar{}, newParseError(filename, "invalid grammar document", err)
	}

	var errs []error
	g := Grammar{Items: make([]Item, 0, len(doc.Items))}
	for i, item := range doc.Items {
		if item.Kind != NonterminalKind {
			logrus.WithFields(logrus.Fields{"item": i, "kind": item.Kind}).Debug("skipping item")
			g.Items = append(g.Items, Other{Kind: item.Kind, Text: item.Text})
			continue
		}
		nt, err := item.nonterminal(filename, i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		g.Items = append(g.Items, nt)
	}
	if len(errs) > 0 {
		return Grammar{}, newParseError(filename, "invalid symbol expressions", errs...)
	}
	return Resolve(g), nil
}

func (d itemDoc) nonterminal(filename string, index int) (*Nonterminal, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("item %d: nonterminal without a name", index)
	}
	nt := &Nonterminal{
		Name:         d.Name,
		Params:       d.Params,
		DocComments:  d.Doc,
		Alternatives: make([]Alternative, 0, len(d.Alternatives)),
	}
	var errs []error
	for i, alt := range d.Alternatives {
		pos := fmt.Sprintf("%s/%d", d.Name, i+1)
		src, err := alt.source()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", pos, err))
			continue
		}
		var expr Expression
		if strings.TrimSpace(src) == "" {
			logrus.WithField("alternative", pos).Debug("empty alternative")
		} else if expr, err = ParseExpr(pos, src); err != nil {
			errs = append(errs, err)
			continue
		}
		annotations := make([]Annotation, 0, len(alt.Annotations))
		for _, a := range alt.Annotations {
			annotations = append(annotations, ParseAnnotation(a))
		}
		nt.Alternatives = append(nt.Alternatives, Alternative{
			Expr:        expr,
			Annotations: annotations,
			DocComments: alt.Doc,
		})
	}
	if len(errs) > 0 {
		return nil, newParseError(filename, fmt.Sprintf("nonterminal %s", d.Name), errs...)
	}
	return nt, nil
}
