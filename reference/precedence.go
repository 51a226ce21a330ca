package reference

import (
	"fmt"
	"strconv"

	"github.com/arr-ai/lalrdoc/grammar"
)

const (
	precedenceKey = "precedence"
	assocKey      = "assoc"
	defaultAssoc  = "default"
)

// Precedence is the precedence level and associativity declared on an
// alternative. Level 0 means no precedence.
type Precedence struct {
	Level int
	Assoc string
}

// ExtractPrecedence reads the precedence annotations of alt. It returns false
// when alt has no precedence annotation. Unparseable or negative levels count
// as 0. Associativity is only read from level 2 up.
func ExtractPrecedence(alt grammar.Alternative) (Precedence, bool) {
	ann, has := alt.Annotation(precedenceKey)
	if !has {
		return Precedence{}, false
	}
	var p Precedence
	if ann.Value != nil {
		if level, err := strconv.Atoi(*ann.Value); err == nil && level > 0 {
			p.Level = level
		}
	}
	if p.Level >= 2 {
		p.Assoc = defaultAssoc
		if assoc, has := alt.Annotation(assocKey); has && assoc.Value != nil {
			p.Assoc = *assoc.Value
		}
	}
	return p, true
}

func (p Precedence) String() string {
	switch {
	case p.Level <= 0:
		return ""
	case p.Level == 1:
		return fmt.Sprintf("precedence %d", p.Level)
	default:
		return fmt.Sprintf("precedence %d, assoc %s", p.Level, p.Assoc)
	}
}
