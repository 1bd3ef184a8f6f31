package format

import (
	"io"
	"strings"

	"github.com/dhamidi/pdagen/automaton"
)

// TextEncoder writes the indented block layout:
//
//	States: q0
//	Input alphabet: a, b
//	...
//	Rules: {
//		Rule: {
//			Left: { ... }
//			Right: { ... }
//		}
//	}
type TextEncoder struct {
	w   io.Writer
	pda *automaton.PushdownAutomaton
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(pda *automaton.PushdownAutomaton) error {
	e.pda = pda
	return encode(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	a := e.pda

	sb.WriteString("States: ")
	for _, state := range a.States() {
		sb.WriteString(state)
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	sb.WriteString("Input alphabet: ")
	sb.WriteString(strings.Join(a.InputAlphabet(), ", "))
	sb.WriteString("\n")

	sb.WriteString("Stack alphabet: ")
	sb.WriteString(strings.Join(a.StackAlphabet(), ", "))
	sb.WriteString("\n")

	sb.WriteString("Start state: ")
	sb.WriteString(a.StartState())
	sb.WriteString("\n")

	sb.WriteString("Start stack element: ")
	sb.WriteString(a.StartStackSymbol())
	sb.WriteString("\n")

	sb.WriteString("Rules: {\n")
	for _, rule := range a.Rules() {
		e.writeRule(&sb, rule)
	}
	sb.WriteString("}\n")

	return []byte(sb.String()), nil
}

func (e *TextEncoder) writeRule(sb *strings.Builder, r automaton.Rule) {
	sb.WriteString("\tRule: {\n")

	sb.WriteString("\t\tLeft: {\n")
	sb.WriteString("\t\t\tState: " + r.Left.State + "\n")
	sb.WriteString("\t\t\tInput symbol: " + r.Left.Input.String() + "\n")
	sb.WriteString("\t\t\tStack symbol: " + r.Left.Stack.String() + "\n")
	sb.WriteString("\t\t}\n")

	sb.WriteString("\t\tRight: {\n")
	sb.WriteString("\t\t\tState: " + r.Right.State + "\n")
	sb.WriteString("\t\t\tStack sequence: " + r.Right.Stack.String() + "\n")
	sb.WriteString("\t\t}\n")

	sb.WriteString("\t}\n")
}
