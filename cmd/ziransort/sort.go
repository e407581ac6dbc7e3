package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/ziransort/internal/parser"
	"github.com/spf13/cobra"
)

func newSortCmd(flags *orderFlags) *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "sort [FILE...]",
		Short: "Sort the lines of files or standard input",
		Long: `Read non-blank lines from each FILE, or from standard input when no
FILE is given, and print them in natural order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.comparator()
			if err != nil {
				return err
			}

			var lines []string
			if len(args) == 0 {
				lines, err = parser.ReadLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			for _, name := range args {
				l, err := readFileLines(name)
				if err != nil {
					return err
				}
				lines = append(lines, l...)
			}

			if unique {
				lines = dedupe(lines)
			}
			c.Sort(lines)

			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop repeated identical lines")
	return cmd
}

func readFileLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := parser.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

// dedupe drops repeated identical lines, keeping the first occurrence.
// Lines that merely order equal, such as "十" and "10", are all kept.
func dedupe(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
