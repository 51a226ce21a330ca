package reference

import "fmt"

// ErrorKind classifies a failed reference build.
type ErrorKind int

const (
	// ErrReadGrammar means the grammar source could not be read.
	ErrReadGrammar ErrorKind = iota + 1
	// ErrParseGrammar means the grammar source could not be parsed.
	ErrParseGrammar
	// ErrWriteOutput means a page could not be written.
	ErrWriteOutput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrReadGrammar:
		return "cannot read grammar"
	case ErrParseGrammar:
		return "cannot parse grammar"
	case ErrWriteOutput:
		return "cannot write reference"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error lets a kind be used as an errors.Is target.
func (k ErrorKind) Error() string {
	return k.String()
}

// Error is the single error a build reports.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an ErrorKind target against e.Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func newError(kind ErrorKind, path string, err error) error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// ReadGrammarError reports a grammar source that could not be read.
func ReadGrammarError(path string, err error) error {
	return newError(ErrReadGrammar, path, err)
}

// ParseGrammarError reports a grammar source that could not be parsed.
func ParseGrammarError(path string, err error) error {
	return newError(ErrParseGrammar, path, err)
}

// WriteOutputError reports an output file that could not be written.
func WriteOutputError(path string, err error) error {
	return newError(ErrWriteOutput, path, err)
}
