package main

import (
	"fmt"

	"github.com/akarpinski/duden"
)

// Run executes the meaning command.
func (c *MeaningCmd) Run(deps *Dependencies) error {
	deps.Lookuper.Refresh = c.Refresh

	word, err := deps.Lookuper.Lookup(deps.Ctx, c.Word)
	if err != nil {
		if duden.ErrorCode(err) == duden.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no dictionary entry for %q\n", c.Word)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", duden.ErrorMessage(err))
		return err
	}

	printGrammar(deps.Stdout, word)
	fmt.Fprintln(deps.Stdout)
	printMeanings(deps.Stdout, word)

	return nil
}
