package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/arr-ai/lalrdoc/grammar"
	"github.com/arr-ai/lalrdoc/reference"
)

var inGrammarFile string

var grammarFlag = cli.StringFlag{
	Name:        "grammar",
	Usage:       "input grammar document",
	Required:    true,
	TakesFile:   true,
	Destination: &inGrammarFile,
}

// loadGrammar reads the grammar document, reporting failures with the
// reference error kinds.
func loadGrammar(path string) (grammar.Grammar, error) {
	g, err := grammar.Load(path)
	if err != nil {
		var pe *grammar.ParseError
		if errors.As(err, &pe) {
			return grammar.Grammar{}, reference.ParseGrammarError(path, err)
		}
		return grammar.Grammar{}, reference.ReadGrammarError(path, err)
	}
	return g, nil
}
