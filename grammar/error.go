package grammar

import (
	"fmt"

	"github.com/arr-ai/lalrdoc/gotree"
)

// ParseError reports every part of a grammar document that could not be read.
type ParseError struct {
	filename string
	msg      string
	children []error
}

func newParseError(filename, msg string, errors ...error) error {
	return &ParseError{
		filename: filename,
		msg:      msg,
		children: errors,
	}
}

func (p *ParseError) Error() string {
	tree := gotree.New("parse failed")
	p.walkErrors(tree)

	return "\n" + tree.Print()
}

// Unwrap returns the individual failures.
func (p *ParseError) Unwrap() []error {
	return p.children
}

func (p *ParseError) walkErrors(parent gotree.Tree) {
	x := gotree.New(fmt.Sprintf(`%s - %s`, p.filename, p.msg))
	for _, err := range p.children {
		if pe, ok := err.(*ParseError); ok {
			pe.walkErrors(x)
		} else {
			x.Add(err.Error())
		}
	}
	parent.AddTree(x)
}
