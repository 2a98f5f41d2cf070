package main

import (
	"fmt"

	"github.com/akarpinski/duden"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return duden.Errorf(duden.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Words.DeleteWord(deps.Ctx, c.Word); err != nil {
		if duden.ErrorCode(err) == duden.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: word %q not cached. Use 'duden words' to see cached words.\n", c.Word)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", duden.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", c.Word)
	return nil
}
