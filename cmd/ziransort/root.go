package main

import (
	"fmt"

	"github.com/dgallion1/ziransort/internal/natcmp"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// orderFlags are shared by every subcommand that compares strings.
type orderFlags struct {
	numberPolicy  string
	chinesePolicy string
	locale        string
	reverse       bool
}

func (f *orderFlags) comparator() (*natcmp.Comparator, error) {
	opts, err := natcmp.ParseOptions(natcmp.Options{}, f.numberPolicy, f.chinesePolicy)
	if err != nil {
		return nil, err
	}
	tag, err := language.Parse(f.locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", f.locale, err)
	}
	c := natcmp.New(opts, natcmp.NewCollator(tag))
	if f.reverse {
		c = c.Reverse()
	}
	return c, nil
}

func newRootCmd() *cobra.Command {
	flags := &orderFlags{}

	root := &cobra.Command{
		Use:   "ziransort",
		Short: "Natural order sorting for Chinese and Arabic numerals",
		Long: `ziransort orders strings so that embedded numbers compare by value,
whether written as 10 or as 十, so that 第九章 sorts before 第十章.`,

		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.numberPolicy, "number-policy", "numberFirst", "order of numbers against text: numberFirst or stringFirst")
	pf.StringVar(&flags.chinesePolicy, "chinese-policy", "mixed", "order of Chinese against Arabic numerals: mixed, first or last")
	pf.StringVar(&flags.locale, "locale", "zh", "collation locale for text")
	pf.BoolVarP(&flags.reverse, "reverse", "r", false, "sort in descending order")

	root.AddCommand(
		newSortCmd(flags),
		newCompareCmd(flags),
		newOutlineCmd(flags),
		newTokensCmd(),
	)
	return root
}
