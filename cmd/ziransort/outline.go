package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/ziransort/internal/doctree"
	"github.com/dgallion1/ziransort/internal/parser"
	"github.com/spf13/cobra"
)

func newOutlineCmd(flags *orderFlags) *cobra.Command {
	var (
		keyColumn int
		pdftotext bool
	)

	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Print the sections of a document in natural order",
		Long: `Parse FILE (txt, md, html, csv, pdf or docx) into sections and print
them with every level sorted by title, indented by depth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.comparator()
			if err != nil {
				return err
			}

			name := args[0]
			p, err := parser.ForFile(name, parser.Options{
				PDFFallbackPdftotext: pdftotext,
				CSVKeyColumn:         keyColumn,
			})
			if err != nil {
				return err
			}
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			tree, err := p.Parse(f, filepath.Base(name))
			if err != nil {
				return fmt.Errorf("parse %s: %w", name, err)
			}
			doctree.SortSections(tree, c.Compare)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tree.Title)
			doctree.Walk(tree, func(n *doctree.DocNode, depth int) {
				key, _, _ := strings.Cut(n.Key(), "\n")
				fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth+1), key)
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&keyColumn, "key-column", 0, "CSV column that titles each row")
	cmd.Flags().BoolVar(&pdftotext, "pdftotext", true, "fall back to the pdftotext binary for PDFs")
	return cmd
}
