package lsp

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/grammar"
)

// ebnf syntax errors carry their position as a "file:line:col: " prefix.
var positionPrefix = regexp.MustCompile(`^.*?:(\d+):(\d+): (.*)$`)

// Diagnose loads text as a grammar and reports every problem that would
// stop pdagen from building it.
func Diagnose(filename, text string, policy automaton.Policy, opts ...grammar.LoadOption) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	g, err := grammar.Load(filename, strings.NewReader(text), opts...)
	if err != nil {
		for _, e := range grammar.Errors(err) {
			pos, msg := locate(e)
			diagnostics = append(diagnostics, diagnostic(pos, msg))
		}
		return diagnostics
	}

	for _, e := range automaton.Check(g, automaton.WithPolicy(policy)) {
		pos, msg := locate(e)
		diagnostics = append(diagnostics, diagnostic(pos, msg))
	}
	return diagnostics
}

func locate(err error) (grammar.Position, string) {
	var lerr *grammar.Error
	if errors.As(err, &lerr) {
		return lerr.Pos, lerr.Msg
	}
	var merr *automaton.MalformedAlternativeError
	if errors.As(err, &merr) {
		return merr.Pos, merr.Error()
	}
	if m := positionPrefix.FindStringSubmatch(err.Error()); m != nil {
		line, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		return grammar.Position{Line: line, Column: col}, m[3]
	}
	return grammar.Position{}, err.Error()
}

func diagnostic(pos grammar.Position, msg string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName

	start := protocol.Position{}
	if pos.IsValid() {
		start.Line = protocol.UInteger(pos.Line - 1)
		if pos.Column > 0 {
			start.Character = protocol.UInteger(pos.Column - 1)
		}
	}
	end := start
	end.Character++

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}
