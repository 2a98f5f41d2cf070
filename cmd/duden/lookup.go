package main

import (
	"fmt"

	"github.com/akarpinski/duden"
	"github.com/akarpinski/duden/lookup"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	deps.Lookuper.Refresh = c.Refresh
	deps.Lookuper.Concurrency = c.Concurrency

	progress := func(event lookup.ProgressEvent) {
		switch event.Type {
		case lookup.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %s\n", event.Word)
		case lookup.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Word, duden.ErrorMessage(event.Error))
		}
	}

	words, err := deps.Lookuper.LookupAll(deps.Ctx, c.Words, progress)
	if err != nil {
		return err
	}

	var found int
	for _, w := range words {
		if w != nil {
			found++
		}
	}
	fmt.Fprintf(deps.Stdout, "Cached %d of %d words\n", found, len(c.Words))

	return nil
}
