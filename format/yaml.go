package format

import (
	"io"

	"sigs.k8s.io/yaml"

	"github.com/dhamidi/pdagen/automaton"
)

// YAMLEncoder writes the same document as JSONEncoder, as YAML.
type YAMLEncoder struct {
	w   io.Writer
	pda *automaton.PushdownAutomaton
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(pda *automaton.PushdownAutomaton) error {
	e.pda = pda
	return encode(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildDocument(e.pda))
}
