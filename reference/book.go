package reference

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/strcase"
)

// BookFilename is mdBook's configuration file.
const BookFilename = "book.toml"

const defaultSrcDir = "src"

// Book holds the book.toml settings of a standalone mdBook project.
type Book struct {
	Title   string
	Authors []string
	Src     string
}

type bookConfig struct {
	Book struct {
		Title   string   `toml:"title"`
		Authors []string `toml:"authors,omitempty"`
		Src     string   `toml:"src"`
	} `toml:"book"`
}

func (b *Book) srcDir() string {
	if b.Src == "" {
		return defaultSrcDir
	}
	return b.Src
}

// Encode renders the book.toml contents.
func (b *Book) Encode() ([]byte, error) {
	var cfg bookConfig
	cfg.Book.Title = b.Title
	cfg.Book.Authors = b.Authors
	cfg.Book.Src = b.srcDir()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BookTitle derives a title from a grammar file name, e.g.
// "path/my_lang.yaml" gives "My Lang Reference".
func BookTitle(grammarPath string) string {
	stem := strings.TrimSuffix(filepath.Base(grammarPath), filepath.Ext(grammarPath))
	words := strings.Fields(strcase.ToDelimited(stem, ' '))
	for i, w := range words {
		words[i] = strcase.ToCamel(w)
	}
	return strings.TrimSpace(strings.Join(words, " ") + " Reference")
}
