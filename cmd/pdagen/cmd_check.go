package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/grammar"
)

func newCheckCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:           "check <file>",
		Short:         "Load a grammar and report every alternative that cannot become a rule",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			g, err := grammar.LoadFile(args[0], cfg.loadOptions()...)
			if err != nil {
				for _, e := range grammar.Errors(err) {
					fmt.Fprintln(out, e)
				}
				return err
			}

			opts, err := cfg.buildOptions()
			if err != nil {
				return err
			}
			if errs := automaton.Check(g, opts...); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(out, e)
				}
				return fmt.Errorf("%s: %d malformed alternatives", args[0], len(errs))
			}

			fmt.Fprintf(out, "%s: %d productions, %d alternatives\n", args[0], len(g.Bindings), g.Alternatives())
			return nil
		},
	}
}
