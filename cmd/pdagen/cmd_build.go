package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/format"
	"github.com/dhamidi/pdagen/grammar"
)

func runBuild(cfg *config, input string) error {
	g, err := grammar.LoadFile(input, cfg.loadOptions()...)
	if err != nil {
		return err
	}
	log.Debugf("loaded %s: %d productions, %d alternatives", input, len(g.Bindings), g.Alternatives())

	opts, err := cfg.buildOptions()
	if err != nil {
		return err
	}
	pda, err := automaton.Build(g, opts...)
	if err != nil {
		return errors.Wrap(err, "build automaton")
	}

	var buf bytes.Buffer
	enc, err := format.NewEncoder(cfg.Format, &buf)
	if err != nil {
		return err
	}
	if err := enc.Encode(pda); err != nil {
		return errors.Wrap(err, "encode automaton")
	}

	output := cfg.Output
	if output == "" {
		output = input + ".out"
	}
	if err := writeFile(output, &buf); err != nil {
		return err
	}

	log.Infof("wrote %d rules to %s", pda.NumRules(), output)
	return nil
}

func writeFile(path string, buf *bytes.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	if _, err := buf.WriteTo(f); err != nil {
		return errors.Wrap(err, "write output")
	}
	return f.Close()
}
