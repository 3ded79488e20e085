package main

import (
	cmmcp "github.com/fwojciec/chromemarks/mcp"
)

// Run executes the mcp command.
func (c *McpCmd) Run(deps *Dependencies) error {
	s := cmmcp.NewServer(deps.Searcher, deps.Profiles[0], version)
	return cmmcp.Serve(deps.Ctx, s, deps.Stdin, deps.Stdout)
}
