package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/akarpinski/duden"
)

// Run executes the words command.
func (c *WordsCmd) Run(deps *Dependencies) error {
	words, err := deps.Words.FindWords(deps.Ctx, duden.WordFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", duden.ErrorMessage(err))
		return err
	}

	if len(words) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached words. Use 'duden meaning' or 'duden lookup' to fetch some.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "WORT\tWORTART\tHÄUFIGKEIT\tABGERUFEN")
	for _, w := range words {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			w.Word, w.Class, formatFrequency(w.Frequency),
			w.FetchedAt.Local().Format("2006-01-02 15:04"))
	}
	tw.Flush()

	return nil
}
