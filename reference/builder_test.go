package reference

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprGrammarSrc = `
items:
  - kind: use
    text: std::str::FromStr
  - kind: nonterminal
    name: Expr
    alternatives:
      - expr: <l:Expr> "+" <r:Term>
      - expr: Term
  - kind: nonterminal
    name: Term
    alternatives:
      - expr: Num
      - expr: '"(" Expr ")"'
  - kind: match
  - kind: nonterminal
    name: Num
    alternatives:
      - expr: r"[0-9]+"
`

// failingSink fails on the write with the given path.
type failingSink struct {
	*MemorySink
	failOn string
}

var errDiskFull = errors.New("disk full")

func (f failingSink) WriteFile(path string, data []byte) error {
	if path == f.failOn {
		return errDiskFull
	}
	return f.MemorySink.WriteFile(path, data)
}

func TestMdbookBuilderWritesPagesAndIndex(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	require.NoError(t, MdbookBuilder{Grammar: mustParse(t, exprGrammarSrc), Sink: sink}.BuildReference())

	assert.Equal(t, []string{"Expr.md", "Term.md", "Num.md", "SUMMARY.md"}, sink.Paths)
	assert.Equal(t, "# Summary\n\n- [Expr](Expr.md)\n- [Term](Term.md)\n- [Num](Num.md)\n", sink.Files["SUMMARY.md"])
	assert.Equal(t, `# Expr

> (1) ([Expr](Expr.md) "+" [Term](Term.md))
>
> (2) ([Term](Term.md))
`, sink.Files["Expr.md"])
}

func TestMdbookBuilderKeepsPageNamedLikeIndex(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	g := mustParse(t, `
items:
  - kind: nonterminal
    name: SUMMARY
    alternatives:
      - expr: '"total"'
`)
	require.NoError(t, MdbookBuilder{Grammar: g, Sink: sink}.BuildReference())

	assert.Equal(t, []string{"SUMMARY-page.md", "SUMMARY.md"}, sink.Paths)
	assert.Equal(t, "# SUMMARY\n\n> (\"total\")\n", sink.Files["SUMMARY-page.md"])
	assert.Equal(t, "# Summary\n\n- [SUMMARY](SUMMARY-page.md)\n", sink.Files["SUMMARY.md"])
}

func TestMdbookBuilderStopsAtFirstWriteFailure(t *testing.T) {
	t.Parallel()

	sink := failingSink{MemorySink: NewMemorySink(), failOn: "Term.md"}
	err := MdbookBuilder{Grammar: mustParse(t, exprGrammarSrc), Sink: sink}.BuildReference()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteOutput))
	assert.True(t, errors.Is(err, errDiskFull))
	assert.False(t, errors.Is(err, ErrReadGrammar))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Term.md", e.Path)
	assert.Equal(t, "cannot write reference Term.md: disk full", err.Error())

	assert.Equal(t, []string{"Expr.md"}, sink.Paths)
}

func TestMdbookBuilderIndexFailure(t *testing.T) {
	t.Parallel()

	sink := failingSink{MemorySink: NewMemorySink(), failOn: "SUMMARY.md"}
	err := MdbookBuilder{Grammar: mustParse(t, exprGrammarSrc), Sink: sink}.BuildReference()
	assert.True(t, errors.Is(err, ErrWriteOutput))
	assert.Len(t, sink.Paths, 3)
}

func TestMdbookBuilderBook(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	book := &Book{Title: "Expr Reference", Authors: []string{"someone"}}
	require.NoError(t, MdbookBuilder{Grammar: mustParse(t, exprGrammarSrc), Sink: sink, Book: book}.BuildReference())

	assert.Equal(t, []string{"book.toml", "src/Expr.md", "src/Term.md", "src/Num.md", "src/SUMMARY.md"}, sink.Paths)

	var cfg bookConfig
	_, err := toml.Decode(sink.Files["book.toml"], &cfg)
	require.NoError(t, err)
	assert.Equal(t, "Expr Reference", cfg.Book.Title)
	assert.Equal(t, []string{"someone"}, cfg.Book.Authors)
	assert.Equal(t, "src", cfg.Book.Src)
}

func TestMdbookBuilderDirSink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	book := &Book{Title: "Expr", Src: "pages"}
	require.NoError(t, MdbookBuilder{Grammar: mustParse(t, exprGrammarSrc), Sink: DirSink{Root: dir}, Book: book}.BuildReference())

	for _, name := range []string{"book.toml", "pages/Expr.md", "pages/Term.md", "pages/Num.md", "pages/SUMMARY.md"} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(name)))
	}
	data, err := os.ReadFile(filepath.Join(dir, "pages", "Num.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Num\n\n> (r\"[0-9]+\")\n", string(data))
}

func TestDirSinkFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := MdbookBuilder{Grammar: mustParse(t, exprGrammarSrc), Sink: DirSink{Root: blocker}}.BuildReference()
	assert.True(t, errors.Is(err, ErrWriteOutput))
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	for kind, err := range map[ErrorKind]error{
		ErrReadGrammar:  ReadGrammarError("g.yaml", cause),
		ErrParseGrammar: ParseGrammarError("g.yaml", cause),
		ErrWriteOutput:  WriteOutputError("A.md", cause),
	} {
		assert.True(t, errors.Is(err, kind), "%v", kind)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), kind.String())
	}
	assert.Equal(t, "cannot read grammar g.yaml: boom", ReadGrammarError("g.yaml", cause).Error())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestBookTitle(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]string{
		"path/to/my_lang.yaml": "My Lang Reference",
		"ExprGrammar.yaml":     "Expr Grammar Reference",
		"calc":                 "Calc Reference",
	} {
		assert.Equal(t, expected, BookTitle(input), input)
	}
}
