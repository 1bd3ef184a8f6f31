package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/grammar"
)

type JSONEncoder struct {
	w   io.Writer
	pda *automaton.PushdownAutomaton
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(pda *automaton.PushdownAutomaton) error {
	e.pda = pda
	return encode(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(buildDocument(e.pda), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// document is the shape shared by the JSON and YAML encoders.
type document struct {
	States           []string       `json:"states"`
	InputAlphabet    []string       `json:"inputAlphabet"`
	StackAlphabet    []string       `json:"stackAlphabet"`
	StartState       string         `json:"startState"`
	StartStackSymbol string         `json:"startStackSymbol"`
	Rules            []documentRule `json:"rules"`
}

type documentRule struct {
	Left  documentLeft  `json:"left"`
	Right documentRight `json:"right"`
}

type documentLeft struct {
	State string         `json:"state"`
	Input documentSymbol `json:"input"`
	Stack documentSymbol `json:"stack"`
}

type documentRight struct {
	State string           `json:"state"`
	Stack []documentSymbol `json:"stack"`
}

type documentSymbol struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
}

func buildDocument(a *automaton.PushdownAutomaton) document {
	doc := document{
		States:           nonNil(a.States()),
		InputAlphabet:    nonNil(a.InputAlphabet()),
		StackAlphabet:    nonNil(a.StackAlphabet()),
		StartState:       a.StartState(),
		StartStackSymbol: a.StartStackSymbol(),
		Rules:            make([]documentRule, 0, a.NumRules()),
	}
	for _, r := range a.Rules() {
		stack := make([]documentSymbol, len(r.Right.Stack))
		for i, sym := range r.Right.Stack {
			stack[i] = buildSymbol(sym)
		}
		doc.Rules = append(doc.Rules, documentRule{
			Left: documentLeft{
				State: r.Left.State,
				Input: buildSymbol(r.Left.Input),
				Stack: buildSymbol(r.Left.Stack),
			},
			Right: documentRight{
				State: r.Right.State,
				Stack: stack,
			},
		})
	}
	return doc
}

func buildSymbol(sym grammar.Symbol) documentSymbol {
	return documentSymbol{Kind: sym.Kind().String(), Name: sym.Name()}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
