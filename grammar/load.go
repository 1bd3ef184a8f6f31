package grammar

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"text/scanner"

	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

// Names that stand for the empty symbol in grammar source.
var emptyNames = map[string]bool{
	EmptyText: true,
	"eps":     true,
}

// Error is a load error tied to a place in the grammar source.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func newError(pos scanner.Position, format string, args ...any) error {
	return &Error{Pos: position(pos), Msg: fmt.Sprintf(format, args...)}
}

func position(pos scanner.Position) Position {
	return Position{Line: pos.Line, Column: pos.Column}
}

// LoadOption configures Load.
type LoadOption func(*loader)

// WithStart selects the start production. By default the first declared
// production is the start symbol.
func WithStart(name string) LoadOption {
	return func(l *loader) {
		l.start = name
	}
}

type loader struct {
	start       string
	productions ebnf.Grammar

	terminals    []string
	hasTerminal  map[string]bool
	nonterminals map[string]bool
}

// LoadFile loads a grammar from an EBNF file.
func LoadFile(filename string, opts ...LoadOption) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open grammar")
	}
	defer f.Close()

	return Load(filename, f, opts...)
}

// Load reads EBNF source and lowers it into a Grammar.
//
// Productions become bindings in declaration order. Quoted tokens and
// undeclared names are terminals, declared names are nonterminals and
// ε (or eps) is the empty symbol. An empty production body is the single
// alternative [ε]. Options, repetitions, ranges and grouped alternatives
// are rejected.
func Load(filename string, r io.Reader, opts ...LoadOption) (*Grammar, error) {
	productions, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(err, "parse grammar")
	}

	l := &loader{
		productions:  productions,
		hasTerminal:  make(map[string]bool),
		nonterminals: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l.lower()
}

func (l *loader) lower() (*Grammar, error) {
	prods := make([]*ebnf.Production, 0, len(l.productions))
	for _, p := range l.productions {
		prods = append(prods, p)
	}
	if len(prods) == 0 {
		return nil, errors.New("grammar has no productions")
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Name.StringPos.Offset < prods[j].Name.StringPos.Offset
	})

	g := &Grammar{
		Nonterminals: make([]string, 0, len(prods)),
		Bindings:     make([]Binding, 0, len(prods)),
	}
	for _, p := range prods {
		g.Nonterminals = append(g.Nonterminals, p.Name.String)
		l.nonterminals[p.Name.String] = true
	}

	for _, p := range prods {
		alts, err := l.alternatives(p.Expr)
		if err != nil {
			return nil, errors.Wrapf(err, "production %s", p.Name.String)
		}
		g.Bindings = append(g.Bindings, Binding{
			Source:      NonTerminal(p.Name.String),
			Description: Description{Sequences: alts},
			Pos:         position(p.Name.StringPos),
		})
	}
	g.Terminals = l.terminals

	g.Start = l.start
	if g.Start == "" {
		g.Start = prods[0].Name.String
	}

	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid grammar")
	}
	return g, nil
}

func (l *loader) alternatives(expr ebnf.Expression) ([]Sequence, error) {
	if expr == nil {
		return []Sequence{EmptySequence()}, nil
	}
	alt, ok := expr.(ebnf.Alternative)
	if !ok {
		alt = ebnf.Alternative{expr}
	}

	seqs := make([]Sequence, 0, len(alt))
	for _, x := range alt {
		seq, err := l.sequence(x)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

func (l *loader) sequence(expr ebnf.Expression) (Sequence, error) {
	terms, ok := expr.(ebnf.Sequence)
	if !ok {
		terms = ebnf.Sequence{expr}
	}

	var seq Sequence
	for _, x := range terms {
		syms, err := l.term(x)
		if err != nil {
			return nil, err
		}
		seq = append(seq, syms...)
	}
	return seq, nil
}

func (l *loader) term(expr ebnf.Expression) ([]Symbol, error) {
	switch x := expr.(type) {
	case *ebnf.Name:
		switch {
		case emptyNames[x.String]:
			return []Symbol{Empty()}, nil
		case l.nonterminals[x.String]:
			return []Symbol{NonTerminal(x.String)}, nil
		default:
			return []Symbol{l.terminal(x.String)}, nil
		}
	case *ebnf.Token:
		if x.String == "" {
			return nil, newError(x.StringPos, "empty token; write %s for the empty symbol", EmptyText)
		}
		return []Symbol{l.terminal(x.String)}, nil
	case *ebnf.Group:
		if _, ok := x.Body.(ebnf.Alternative); ok {
			return nil, newError(x.Lparen, "grouped alternatives are not supported")
		}
		return l.sequence(x.Body)
	case *ebnf.Option:
		return nil, newError(x.Lbrack, "options are not supported; write the alternatives out")
	case *ebnf.Repetition:
		return nil, newError(x.Lbrace, "repetitions are not supported; use a recursive production")
	case *ebnf.Range:
		return nil, newError(x.Begin.StringPos, "character ranges are not supported")
	case *ebnf.Bad:
		return nil, newError(x.TokPos, "%s", x.Error)
	default:
		return nil, newError(expr.Pos(), "unsupported expression %T", expr)
	}
}

func (l *loader) terminal(name string) Symbol {
	if !l.hasTerminal[name] {
		l.hasTerminal[name] = true
		l.terminals = append(l.terminals, name)
	}
	return Terminal(name)
}

// Errors flattens err into its individual errors. The ebnf package
// reports syntax errors as a list; any other error is returned alone.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(errors.Cause(err))
	if v.Kind() != reflect.Slice {
		return []error{err}
	}

	var list []error
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		return []error{err}
	}
	return list
}
