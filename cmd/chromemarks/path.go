package main

import (
	"fmt"

	"github.com/fwojciec/chromemarks"
)

// Run executes the path command.
func (c *PathCmd) Run(deps *Dependencies) error {
	for _, profile := range deps.Profiles {
		path := deps.Paths.Path(profile)
		if path == "" {
			err := chromemarks.Errorf(chromemarks.EFILEREAD, "no bookmarks file location for profile %q on this platform", profile)
			fmt.Fprintf(deps.Stderr, "error: %s\n", chromemarks.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}
