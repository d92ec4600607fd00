package main

import (
	"fmt"

	"recast"
	"recast/enrich"
)

// Run executes the enrich command.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	result, err := deps.Enricher.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recast.ErrorMessage(err))
		return err
	}

	for _, item := range result.Items {
		switch item.Outcome {
		case enrich.OutcomeSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %q: not enough valid references\n", item.Title)
		case enrich.OutcomeFailed:
			fmt.Fprintf(deps.Stderr, "  fail %q: %s\n", item.Title, recast.ErrorMessage(item.Err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Enriched %d article(s), %d skipped, %d failed\n",
		result.Enriched, result.Skipped, result.Failed)

	return nil
}
