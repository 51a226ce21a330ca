package cmd

import (
	"github.com/urfave/cli"

	"github.com/arr-ai/lalrdoc/reference"
)

var outDir string
var bookMode bool
var bookTitle string

var mdbookCommand = cli.Command{
	Name:    "mdbook",
	Aliases: []string{"md"},
	Usage:   "Write an mdBook reference for a grammar",
	Action:  mdbook,
	Flags: []cli.Flag{
		grammarFlag,
		cli.StringFlag{
			Name:        "output",
			Usage:       "directory to write the pages to",
			Required:    true,
			TakesFile:   true,
			Destination: &outDir,
		},
		cli.BoolFlag{
			Name:        "book",
			Usage:       "write a complete mdBook project (book.toml and src/)",
			Destination: &bookMode,
		},
		cli.StringFlag{
			Name:        "title",
			Usage:       "book title, defaults to one derived from the grammar file name",
			Destination: &bookTitle,
		},
		cli.StringSliceFlag{
			Name:  "author",
			Usage: "book author, may be repeated",
		},
	},
}

func mdbook(c *cli.Context) error {
	g, err := loadGrammar(inGrammarFile)
	if err != nil {
		return err
	}

	builder := reference.MdbookBuilder{
		Grammar: g,
		Sink:    reference.DirSink{Root: outDir},
	}
	if bookMode {
		title := bookTitle
		if title == "" {
			title = reference.BookTitle(inGrammarFile)
		}
		builder.Book = &reference.Book{Title: title, Authors: c.StringSlice("author")}
	}

	return builder.BuildReference()
}
