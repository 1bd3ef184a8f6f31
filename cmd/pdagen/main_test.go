package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onsi/gomega"
)

func writeGrammar(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.ebnf")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_WritesOutputFile(t *testing.T) {
	g := gomega.NewWithT(t)
	path := writeGrammar(t, `S = "a" S | "b" .`)

	_, err := execute(path)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	data, err := os.ReadFile(path + ".out")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(string(data)).To(gomega.HavePrefix("States: q0 \nInput alphabet: a, b\nStack alphabet: S\n"))
	g.Expect(string(data)).To(gomega.HaveSuffix("\t}\n}\n"))
	g.Expect(strings.Count(string(data), "Rule: {")).To(gomega.Equal(2))
}

func TestRoot_Flags(t *testing.T) {
	g := gomega.NewWithT(t)
	path := writeGrammar(t, `S = "a" T . T = T "b" | "c" .`)
	output := filepath.Join(filepath.Dir(path), "pda.json")

	_, err := execute("-vv", "--format", "json", "--policy", "permissive", "--state", "p", "--start", "T", "-o", output, path)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	data, err := os.ReadFile(output)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(string(data)).To(gomega.ContainSubstring(`"startState": "p"`))
	g.Expect(string(data)).To(gomega.ContainSubstring(`"startStackSymbol": "T"`))

	_, err = os.Stat(path + ".out")
	g.Expect(os.IsNotExist(err)).To(gomega.BeTrue())
}

func TestRoot_EpsilonProductionsByDefault(t *testing.T) {
	g := gomega.NewWithT(t)
	path := writeGrammar(t, `S = "a" S | ε .
		T = .`)

	_, err := execute(path)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	data, err := os.ReadFile(path + ".out")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(string(data)).To(gomega.ContainSubstring("\t\t\tInput symbol: ε\n\t\t\tStack symbol: S\n"))
	g.Expect(string(data)).To(gomega.ContainSubstring("\t\t\tInput symbol: ε\n\t\t\tStack symbol: T\n"))
	g.Expect(strings.Count(string(data), "Stack sequence: ε\n")).To(gomega.Equal(2))
}

func TestRoot_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.ebnf", "b.ebnf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				args[i] = filepath.Join(dir, a)
				if err := os.WriteFile(args[i], []byte(`S = "a" .`), 0644); err != nil {
					t.Fatal(err)
				}
			}

			out, err := execute(args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, "Usage:") {
				t.Errorf("output does not contain usage:\n%s", out)
			}
			matches, _ := filepath.Glob(filepath.Join(dir, "*.out"))
			if len(matches) != 0 {
				t.Errorf("unexpected output files: %v", matches)
			}
		})
	}
}

func TestRoot_StrictPolicyLeavesNoOutput(t *testing.T) {
	path := writeGrammar(t, `S = T "a" . T = "b" .`)

	_, err := execute("--policy", "strict", path)
	if err == nil || !strings.Contains(err.Error(), "first symbol T (nonterminal) is not a terminal") {
		t.Fatalf("error = %v, want malformed alternative", err)
	}
	if _, err := os.Stat(path + ".out"); !os.IsNotExist(err) {
		t.Errorf("output file exists after a failed build")
	}
}

func TestRoot_LoadErrors(t *testing.T) {
	path := writeGrammar(t, `S = [ "a" ] .`)
	if _, err := execute(path); err == nil {
		t.Error("expected load error")
	}

	if _, err := execute(filepath.Join(t.TempDir(), "missing.ebnf")); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestRoot_InvalidFlags(t *testing.T) {
	path := writeGrammar(t, `S = "a" .`)

	tests := [][]string{
		{"--format", "xml", path},
		{"--policy", "lenient", path},
		{"--state", "", path},
		{"--state", "q 0", path},
	}
	for _, args := range tests {
		_, err := execute(args...)
		if err == nil || !strings.Contains(err.Error(), "invalid flags") {
			t.Errorf("execute(%v) error = %v, want invalid flags", args, err)
		}
	}
	if _, err := os.Stat(path + ".out"); !os.IsNotExist(err) {
		t.Errorf("output written despite invalid flags")
	}
}

func TestCheck(t *testing.T) {
	g := gomega.NewWithT(t)

	ok := writeGrammar(t, `S = "a" S | "b" .`)
	out, err := execute("check", ok)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(out).To(gomega.ContainSubstring("1 productions, 2 alternatives"))

	bad := writeGrammar(t, `S = T | S "a" . T = "b" .`)
	out, err = execute("check", "--policy", "strict", bad)
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("2 malformed alternatives")))
	g.Expect(out).To(gomega.ContainSubstring("production S, alternative 1"))
	g.Expect(out).To(gomega.ContainSubstring("production S, alternative 2"))

	_, err = execute("check", bad)
	g.Expect(err).ToNot(gomega.HaveOccurred())

	syntax := writeGrammar(t, `S = "a"`)
	_, err = execute("check", syntax)
	g.Expect(err).To(gomega.HaveOccurred())
}
