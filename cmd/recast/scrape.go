package main

import (
	"fmt"

	"recast"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recast.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Resolved %d listing page(s), found %d article links\n",
		result.LastPage, result.Found)
	fmt.Fprintf(deps.Stdout, "Saved %d article(s), %d already stored, %d failed\n",
		result.Saved, result.Skipped, result.Failed)

	return nil
}
