package format

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/dhamidi/pdagen/automaton"
)

// TableEncoder writes a short summary followed by one table row per rule.
type TableEncoder struct {
	w   io.Writer
	pda *automaton.PushdownAutomaton
}

func NewTableEncoder(w io.Writer) *TableEncoder {
	return &TableEncoder{w: w}
}

func (e *TableEncoder) Encode(pda *automaton.PushdownAutomaton) error {
	e.pda = pda
	return encode(e.w, e)
}

func (e *TableEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	a := e.pda

	fmt.Fprintf(&buf, "States: %s\n", strings.Join(a.States(), ", "))
	fmt.Fprintf(&buf, "Input alphabet: %s\n", strings.Join(a.InputAlphabet(), ", "))
	fmt.Fprintf(&buf, "Stack alphabet: %s\n", strings.Join(a.StackAlphabet(), ", "))
	fmt.Fprintf(&buf, "Start state: %s\n", a.StartState())
	fmt.Fprintf(&buf, "Start stack element: %s\n\n", a.StartStackSymbol())

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "State", "Input", "Pop", "Next", "Push"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for i, r := range a.Rules() {
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.Left.State,
			r.Left.Input.String(),
			r.Left.Stack.String(),
			r.Right.State,
			r.Right.Stack.String(),
		})
	}
	table.Render()

	return buf.Bytes(), nil
}
