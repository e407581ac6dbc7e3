package main

import (
	"fmt"

	"github.com/dgallion1/ziransort/internal/token"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens TEXT",
		Short: "Show how TEXT splits into text and number tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range token.Tokenize(args[0]) {
				if t.IsText() {
					fmt.Fprintf(out, "text\t%q\n", t.Raw)
					continue
				}
				fmt.Fprintf(out, "%s\t%q\t%s\n", t.Notation, t.Raw, t.Digits())
			}
			return nil
		},
	}
}
