package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/chromemarks/launcher"
)

var _ launcher.Display = (*ChannelDisplay)(nil)

// ChannelDisplay hands rows from the plugin's search goroutines to the
// Bubble Tea event loop. Only the latest undelivered set of rows is kept.
type ChannelDisplay struct {
	ch chan []launcher.Item
}

// NewChannelDisplay returns an empty ChannelDisplay.
func NewChannelDisplay() *ChannelDisplay {
	return &ChannelDisplay{ch: make(chan []launcher.Item, 1)}
}

// Show queues items, replacing rows the model has not picked up yet.
func (d *ChannelDisplay) Show(items []launcher.Item) {
	for {
		select {
		case d.ch <- items:
			return
		default:
		}
		select {
		case <-d.ch:
		default:
		}
	}
}

// Clear drops rows the model has not picked up yet.
func (d *ChannelDisplay) Clear() {
	select {
	case <-d.ch:
	default:
	}
}

type itemsMsg []launcher.Item

// Listen returns a command that blocks until rows are shown and delivers
// them as a message to the model.
func (d *ChannelDisplay) Listen() tea.Cmd {
	return func() tea.Msg {
		return itemsMsg(<-d.ch)
	}
}
