// Package automaton builds single-state pushdown automata from grammars.
package automaton

import (
	"fmt"

	"github.com/dhamidi/pdagen/grammar"
)

// Left is the precondition of a rule: the control state, the input
// symbol consumed and the symbol expected on top of the stack.
type Left struct {
	State string
	Input grammar.Symbol
	Stack grammar.Symbol
}

// Right is the effect of a rule: the next control state and the
// symbols that replace the popped stack symbol. [ε] pops without
// replacement.
type Right struct {
	State string
	Stack grammar.Sequence
}

// Rule is a single transition.
type Rule struct {
	Left  Left
	Right Right
}

func (r Rule) String() string {
	return fmt.Sprintf("(%s, %s, %s) -> (%s, %s)",
		r.Left.State, r.Left.Input, r.Left.Stack, r.Right.State, r.Right.Stack)
}

func (r Rule) clone() Rule {
	r.Right.Stack = r.Right.Stack.Clone()
	return r
}

// PushdownAutomaton is an immutable pushdown automaton. Accessors return
// copies so callers cannot modify it.
type PushdownAutomaton struct {
	states           []string
	inputAlphabet    []string
	stackAlphabet    []string
	startState       string
	startStackSymbol string
	rules            []Rule
}

func (a *PushdownAutomaton) States() []string        { return cloneStrings(a.states) }
func (a *PushdownAutomaton) InputAlphabet() []string { return cloneStrings(a.inputAlphabet) }
func (a *PushdownAutomaton) StackAlphabet() []string { return cloneStrings(a.stackAlphabet) }
func (a *PushdownAutomaton) StartState() string      { return a.startState }
func (a *PushdownAutomaton) StartStackSymbol() string {
	return a.startStackSymbol
}

// Rules returns the transitions in construction order.
func (a *PushdownAutomaton) Rules() []Rule {
	rules := make([]Rule, len(a.rules))
	for i, r := range a.rules {
		rules[i] = r.clone()
	}
	return rules
}

// NumRules returns the number of transitions.
func (a *PushdownAutomaton) NumRules() int { return len(a.rules) }

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
