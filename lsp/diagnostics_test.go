package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/grammar"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		policy   automaton.Policy
		wantLine []protocol.UInteger
		wantMsg  string
	}{
		{
			name:   "valid grammar",
			text:   `S = "a" S | "b" .`,
			policy: automaton.Strict,
		},
		{
			name: "nonterminal first symbol",
			text: `S = "a" .
T = S "b" | "c" | T .`,
			policy:   automaton.Strict,
			wantLine: []protocol.UInteger{1, 1},
			wantMsg:  "production T, alternative 1: first symbol S (nonterminal) is not a terminal",
		},
		{
			name: "nonterminal first symbol, permissive",
			text: `S = "a" .
T = S "b" .`,
			policy: automaton.Permissive,
		},
		{
			name: "unsupported construct",
			text: `S = "a" .

T = { "b" } .`,
			policy:   automaton.Strict,
			wantLine: []protocol.UInteger{2},
			wantMsg:  "repetitions are not supported; use a recursive production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Diagnose("test.ebnf", tt.text, tt.policy)
			if diags == nil {
				t.Fatal("Diagnose returned nil; want an empty slice")
			}
			if len(diags) != len(tt.wantLine) {
				t.Fatalf("got %d diagnostics, want %d: %+v", len(diags), len(tt.wantLine), diags)
			}
			for i, d := range diags {
				if d.Range.Start.Line != tt.wantLine[i] {
					t.Errorf("diagnostic %d on line %d, want %d", i, d.Range.Start.Line, tt.wantLine[i])
				}
				if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
					t.Errorf("diagnostic %d is not an error", i)
				}
			}
			if tt.wantMsg != "" && diags[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", diags[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestDiagnose_SyntaxError(t *testing.T) {
	diags := Diagnose("test.ebnf", "S = \"a\"\nT = \"b\" .", automaton.Strict)
	if len(diags) == 0 {
		t.Fatal("expected diagnostics for a missing period")
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("first diagnostic on line %d, want 1", diags[0].Range.Start.Line)
	}
	if !strings.Contains(diags[0].Message, "expected") {
		t.Errorf("message = %q, want a syntax error", diags[0].Message)
	}
	if strings.HasPrefix(diags[0].Message, "test.ebnf") {
		t.Errorf("message %q still carries its position prefix", diags[0].Message)
	}
}

func TestDiagnose_InvalidGrammarPosition(t *testing.T) {
	diags := Diagnose("g.ebnf", "S = \"a\" .\n\nT = \"b\" ε .", automaton.Strict)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Range.Start.Line != 2 {
		t.Errorf("diagnostic on line %d, want 2", diags[0].Range.Start.Line)
	}
	if !strings.Contains(diags[0].Message, "may only appear alone") {
		t.Errorf("message = %q", diags[0].Message)
	}
}

func TestDiagnose_StartProduction(t *testing.T) {
	text := `S = "a" T .
T = "b" .`

	if diags := Diagnose("g.ebnf", text, automaton.Strict, grammar.WithStart("T")); len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %+v", diags)
	}

	diags := Diagnose("g.ebnf", text, automaton.Strict, grammar.WithStart("X"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, `start symbol "X" has no production`) {
		t.Errorf("message = %q", diags[0].Message)
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/g.ebnf", "/tmp/g.ebnf"},
		{"file:///tmp/a%20b/../g.ebnf", "/tmp/g.ebnf"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
	}
	for _, tt := range tests {
		if got := uriToPath(tt.uri); got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
