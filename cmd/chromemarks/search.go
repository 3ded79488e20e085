package main

import (
	"fmt"

	"github.com/fwojciec/chromemarks"
	"golang.org/x/sync/errgroup"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results := make([][]*chromemarks.Bookmark, len(deps.Profiles))

	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, profile := range deps.Profiles {
		g.Go(func() error {
			bookmarks, err := deps.Searcher.Search(ctx, profile, c.Term)
			if err != nil {
				return err
			}
			results[i] = bookmarks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chromemarks.ErrorMessage(err))
		return err
	}

	var n int
	for _, bookmarks := range results {
		for _, b := range bookmarks {
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", b.Title, b.URL, b.Folder)
			n++
		}
	}
	if n == 0 {
		fmt.Fprintf(deps.Stdout, "No bookmarks found matching %s\n", c.Term)
	}

	return nil
}
