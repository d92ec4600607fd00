package main

import (
	"fmt"

	"recast"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := recast.ArticleFilter{Limit: c.Limit}
	if c.Type != "" {
		filter.Type = &c.Type
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recast.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'recast scrape' to ingest some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s\n", a.ID, a.Type, a.Title)
	}

	return nil
}
