package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/pdagen/automaton"
	"github.com/dhamidi/pdagen/lsp"
)

func newLSPCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for grammar files",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := automaton.ParsePolicy(cfg.Policy)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, policy, cfg.loadOptions()...)
			return server.RunStdio()
		},
	}
}
