package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("#7C3AED")
	secondary = lipgloss.Color("#10B981")
	muted     = lipgloss.Color("#6B7280")
	danger    = lipgloss.Color("#EF4444")
	white     = lipgloss.Color("#FFFFFF")

	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(primary).
			Foreground(white).
			Bold(true)

	folderStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	statusStyle = lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)
)
