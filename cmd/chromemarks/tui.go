package main

import (
	"github.com/fwojciec/chromemarks/launcher"
	"github.com/fwojciec/chromemarks/tui"
)

// Run executes the tui command.
func (c *TuiCmd) Run(deps *Dependencies) error {
	display := tui.NewChannelDisplay()

	plugin := launcher.NewPlugin(deps.Searcher, display)
	plugin.Keyword = c.Keyword
	plugin.Profile = deps.Profiles[0]
	plugin.Opener = deps.Opener
	plugin.Clipboard = deps.Clipboard
	plugin.Logger = deps.Logger
	defer plugin.Debouncer.Stop()

	return tui.Run(deps.Ctx, plugin, display, c.Keyword)
}
