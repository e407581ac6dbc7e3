package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompareCmd(flags *orderFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print -1, 0 or 1 as A sorts before, with or after B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.comparator()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Compare(args[0], args[1]))
			return nil
		},
	}
}
