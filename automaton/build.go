package automaton

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dhamidi/pdagen/grammar"
)

// DefaultStartState names the single control state unless overridden.
const DefaultStartState = "q0"

// Policy decides what Build does with an alternative whose first symbol
// is not a terminal.
type Policy int

const (
	// Permissive uses the first symbol as the input symbol whatever its
	// kind. It is the default.
	Permissive Policy = iota
	// Strict rejects such alternatives with a *MalformedAlternativeError.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "strict":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return 0, errors.Errorf("unknown policy %q (expected strict or permissive)", name)
	}
}

// MalformedAlternativeError reports an alternative that cannot be turned
// into a rule.
type MalformedAlternativeError struct {
	Source      grammar.Symbol
	Alternative int // zero-based index within the binding
	Symbol      grammar.Symbol
	Pos         grammar.Position
}

func (e *MalformedAlternativeError) Error() string {
	if e.Symbol == (grammar.Symbol{}) {
		return fmt.Sprintf("production %s, alternative %d: empty alternative", e.Source, e.Alternative+1)
	}
	return fmt.Sprintf("production %s, alternative %d: first symbol %s (%s) is not a terminal",
		e.Source, e.Alternative+1, e.Symbol, e.Symbol.Kind())
}

// Option configures Build.
type Option func(*builder)

// WithPolicy sets how non-terminal first symbols are handled.
func WithPolicy(p Policy) Option {
	return func(b *builder) {
		b.policy = p
	}
}

// WithStartState names the control state.
func WithStartState(name string) Option {
	return func(b *builder) {
		b.state = name
	}
}

type builder struct {
	policy Policy
	state  string
}

func newBuilder(opts []Option) *builder {
	b := &builder{policy: Permissive, state: DefaultStartState}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs the single-state pushdown automaton for g.
//
// Every alternative of every binding yields one rule, in declaration
// order. The alternative's first symbol is the input symbol, the
// binding's nonterminal is the stack symbol, and the rest of the
// alternative replaces it on the stack ([ε] when nothing is left).
// Build does not validate g beyond what each rule needs.
func Build(g *grammar.Grammar, opts ...Option) (*PushdownAutomaton, error) {
	b := newBuilder(opts)

	rules := make([]Rule, 0, g.Alternatives())
	for _, binding := range g.Bindings {
		for i, seq := range binding.Description.Sequences {
			rule, err := b.rule(binding, i, seq)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}

	return &PushdownAutomaton{
		states:           []string{b.state},
		inputAlphabet:    cloneStrings(g.Terminals),
		stackAlphabet:    cloneStrings(g.Nonterminals),
		startState:       b.state,
		startStackSymbol: g.Start,
		rules:            rules,
	}, nil
}

func (b *builder) rule(binding grammar.Binding, i int, seq grammar.Sequence) (Rule, error) {
	if len(seq) == 0 {
		return Rule{}, &MalformedAlternativeError{Source: binding.Source, Alternative: i, Pos: binding.Pos}
	}
	first := seq[0]
	if b.policy == Strict && !first.IsTerminal() {
		return Rule{}, &MalformedAlternativeError{Source: binding.Source, Alternative: i, Symbol: first, Pos: binding.Pos}
	}

	stack := grammar.EmptySequence()
	if len(seq) > 1 {
		stack = seq[1:].Clone()
	}
	return Rule{
		Left:  Left{State: b.state, Input: first, Stack: binding.Source},
		Right: Right{State: b.state, Stack: stack},
	}, nil
}

// Check reports every alternative of g that Build would reject under the
// given options. It returns nil when Build would succeed.
func Check(g *grammar.Grammar, opts ...Option) []error {
	b := newBuilder(opts)

	var errs []error
	for _, binding := range g.Bindings {
		for i, seq := range binding.Description.Sequences {
			if _, err := b.rule(binding, i, seq); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
