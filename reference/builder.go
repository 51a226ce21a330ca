package reference

import (
	"path"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/lalrdoc/grammar"
)

// Builder produces a reference for a grammar in some output format.
type Builder interface {
	BuildReference() error
}

// MdbookBuilder writes one markdown page per nonterminal plus a SUMMARY.md
// index. With Book set, the pages go under the book's source directory and a
// book.toml is written next to it.
type MdbookBuilder struct {
	Grammar grammar.Grammar
	Sink    Sink
	Book    *Book
}

var _ Builder = MdbookBuilder{}

// BuildReference renders and writes every page. The first write failure
// stops the build and is returned as an ErrWriteOutput *Error; pages already
// written are left in place.
func (b MdbookBuilder) BuildReference() error {
	srcDir := ""
	if b.Book != nil {
		data, err := b.Book.Encode()
		if err != nil {
			return WriteOutputError(BookFilename, err)
		}
		if err := b.write(BookFilename, data); err != nil {
			return err
		}
		srcDir = b.Book.srcDir()
	}

	var names []string
	for _, nt := range b.Grammar.Nonterminals() {
		page := AssemblePage(nt, b.Grammar)
		if err := b.write(path.Join(srcDir, page.Filename()), []byte(page.Body)); err != nil {
			return err
		}
		names = append(names, nt.Name)
	}

	index := AssembleIndex(names)
	if err := b.write(path.Join(srcDir, index.Filename()), []byte(index.Body)); err != nil {
		return err
	}

	logrus.WithField("pages", len(names)).Info("reference built")
	return nil
}

func (b MdbookBuilder) write(name string, data []byte) error {
	if err := b.Sink.WriteFile(name, data); err != nil {
		return WriteOutputError(name, err)
	}
	logrus.WithField("page", name).Debug("wrote page")
	return nil
}
