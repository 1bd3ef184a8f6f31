// Package grammar holds the in-memory model of a context-free grammar
// and a loader that reads it from EBNF source.
package grammar

import "fmt"

// Kind is the variant of a Symbol.
type Kind uint8

const (
	KindTerminal Kind = iota + 1
	KindNonTerminal
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonTerminal:
		return "nonterminal"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// EmptyText is how the empty symbol is written.
const EmptyText = "ε"

// Symbol is a grammar symbol. The zero value is not a valid symbol.
// Symbols are comparable: two symbols are equal when they have the same
// kind and name.
type Symbol struct {
	kind Kind
	name string
}

// Terminal returns the terminal symbol with the given name.
func Terminal(name string) Symbol {
	return Symbol{kind: KindTerminal, name: name}
}

// NonTerminal returns the nonterminal symbol with the given name.
func NonTerminal(name string) Symbol {
	return Symbol{kind: KindNonTerminal, name: name}
}

// Empty returns the epsilon symbol.
func Empty() Symbol {
	return Symbol{kind: KindEmpty}
}

func (s Symbol) Kind() Kind { return s.kind }

// Name returns the symbol name, or "" for the empty symbol.
func (s Symbol) Name() string { return s.name }

func (s Symbol) IsTerminal() bool    { return s.kind == KindTerminal }
func (s Symbol) IsNonTerminal() bool { return s.kind == KindNonTerminal }
func (s Symbol) IsEmpty() bool       { return s.kind == KindEmpty }

func (s Symbol) String() string {
	if s.kind == KindEmpty {
		return EmptyText
	}
	return s.name
}
