package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/lalrdoc/grammar"
)

var treeCommand = cli.Command{
	Name:    "tree",
	Aliases: []string{"t"},
	Usage:   "Print a grammar document as a tree",
	Action:  tree,
	Flags:   []cli.Flag{grammarFlag},
}

func tree(c *cli.Context) error {
	g, err := loadGrammar(inGrammarFile)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, grammar.TreeView(inGrammarFile, g))
	return nil
}
