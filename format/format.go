// Package format renders pushdown automata.
package format

import (
	"encoding"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/pdagen/automaton"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(pda *automaton.PushdownAutomaton) error
}

var encoders = map[string]func(io.Writer) Encoder{
	"text":  func(w io.Writer) Encoder { return NewTextEncoder(w) },
	"json":  func(w io.Writer) Encoder { return NewJSONEncoder(w) },
	"yaml":  func(w io.Writer) Encoder { return NewYAMLEncoder(w) },
	"table": func(w io.Writer) Encoder { return NewTableEncoder(w) },
}

// Formats lists the names accepted by NewEncoder.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	newEncoder, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return newEncoder(w), nil
}

func encode(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
