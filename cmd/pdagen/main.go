package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("pdagen")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "pdagen <grammar-file>",
		Short: "Convert a context-free grammar into a single-state pushdown automaton",
		Long: `Convert an EBNF grammar into a single-state pushdown automaton.

Each alternative of each production becomes one rule: its first symbol is
the input symbol, the production name is the stack symbol and the rest of
the alternative is pushed in its place. The automaton is written next to
the input as <grammar-file>.out unless --output is given.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(cfg.Verbose, nil)
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cmd.Usage()
			}
			return runBuild(cfg, args[0])
		},
	}

	cmd.PersistentFlags().CountVarP(&cfg.Verbose, "verbose", "v", "increase log verbosity")
	cmd.PersistentFlags().StringVar(&cfg.Policy, "policy", cfg.Policy, "handling of alternatives that start with a nonterminal (permissive, strict)")
	cmd.PersistentFlags().StringVar(&cfg.Start, "start", "", "start production (defaults to the first production)")
	cmd.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format (text, json, yaml, table)")
	cmd.Flags().StringVar(&cfg.State, "state", cfg.State, "name of the control state")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "output file (defaults to <grammar-file>.out)")

	cmd.AddCommand(newCheckCmd(cfg))
	cmd.AddCommand(newLSPCmd(cfg))

	return cmd
}
