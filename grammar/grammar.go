package grammar

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sequence is one right-hand side alternative. A valid sequence is
// non-empty and is either exactly [Empty] or holds no Empty symbol.
type Sequence []Symbol

// EmptySequence returns the sequence [Empty].
func EmptySequence() Sequence {
	return Sequence{Empty()}
}

// IsEmpty reports whether s is exactly [Empty].
func (s Sequence) IsEmpty() bool {
	return len(s) == 1 && s[0].IsEmpty()
}

// Validate checks the sequence invariant.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return errors.New("empty alternative")
	}
	if s.IsEmpty() {
		return nil
	}
	for i, sym := range s {
		switch sym.Kind() {
		case KindEmpty:
			return errors.Errorf("%s may only appear alone, found at position %d", EmptyText, i)
		case KindTerminal, KindNonTerminal:
		default:
			return errors.Errorf("invalid symbol at position %d", i)
		}
	}
	return nil
}

// Clone returns a copy of s that shares no memory with it.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, sym := range s {
		parts[i] = sym.String()
	}
	return strings.Join(parts, " ")
}

// Description is the ordered set of alternatives of one production.
type Description struct {
	Sequences []Sequence
}

// Position is a line and column in grammar source. The zero value means
// the position is unknown.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Binding pairs a nonterminal with its alternatives.
type Binding struct {
	Source      Symbol
	Description Description
	Pos         Position
}

// Grammar is a context-free grammar. Bindings are kept in declaration
// order; Nonterminals and Terminals list names without duplicates.
type Grammar struct {
	Nonterminals []string
	Terminals    []string
	Start        string
	Bindings     []Binding
}

// Binding returns the first binding whose source is the named nonterminal.
func (g *Grammar) Binding(name string) *Binding {
	for i := range g.Bindings {
		if g.Bindings[i].Source.Name() == name {
			return &g.Bindings[i]
		}
	}
	return nil
}

// Alternatives returns the total number of alternatives over all bindings.
func (g *Grammar) Alternatives() int {
	n := 0
	for _, b := range g.Bindings {
		n += len(b.Description.Sequences)
	}
	return n
}

// Validate checks the structural invariants of g.
func (g *Grammar) Validate() error {
	terminals := make(map[string]bool, len(g.Terminals))
	for _, t := range g.Terminals {
		terminals[t] = true
	}
	for _, n := range g.Nonterminals {
		if terminals[n] {
			return errors.Errorf("%q is both a terminal and a nonterminal", n)
		}
	}

	if g.Start == "" {
		return errors.New("no start symbol")
	}
	if g.Binding(g.Start) == nil {
		return errors.Errorf("start symbol %q has no production", g.Start)
	}

	for _, b := range g.Bindings {
		if !b.Source.IsNonTerminal() {
			return &Error{Pos: b.Pos, Msg: fmt.Sprintf("production source %q is not a nonterminal", b.Source)}
		}
		if len(b.Description.Sequences) == 0 {
			return &Error{Pos: b.Pos, Msg: fmt.Sprintf("production %s has no alternatives", b.Source)}
		}
		for i, seq := range b.Description.Sequences {
			if err := seq.Validate(); err != nil {
				return &Error{Pos: b.Pos, Msg: fmt.Sprintf("production %s, alternative %d: %v", b.Source, i+1, err)}
			}
		}
	}
	return nil
}
