package mock

import "github.com/fwojciec/chromemarks/launcher"

var _ launcher.Display = (*Display)(nil)

// Display is a mock implementation of launcher.Display.
type Display struct {
	ShowFn func(items []launcher.Item)
}

func (d *Display) Show(items []launcher.Item) {
	d.ShowFn(items)
}
