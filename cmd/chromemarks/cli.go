package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/chromemarks"
)

// PathResolver reports where the bookmarks file of a profile lives.
type PathResolver interface {
	Path(profile string) string
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Profiles  []string
	Paths     PathResolver
	Searcher  chromemarks.BookmarkSearcher
	Opener    chromemarks.URLOpener
	Clipboard chromemarks.Clipboard
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	UserDataDir string   `name:"user-data-dir" env:"CHROMEMARKS_USER_DATA_DIR" type:"path" help:"Chrome user data directory (defaults to the platform location)"`
	Profile     []string `short:"p" env:"CHROMEMARKS_PROFILE" help:"Chrome profile directory name, repeatable (default: Default)"`
	Verbose     bool     `short:"v" help:"Log bookmark loads and searches"`

	Search SearchCmd `cmd:"" help:"Search bookmarks by title"`
	Path   PathCmd   `cmd:"" help:"Print the bookmarks file location"`
	Tui    TuiCmd    `cmd:"" help:"Search interactively in the terminal"`
	Mcp    McpCmd    `cmd:"" help:"Serve bookmark search over MCP on stdio"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" help:"Text to look for in bookmark titles"`
}

// PathCmd is the "path" subcommand.
type PathCmd struct{}

// TuiCmd is the "tui" subcommand.
type TuiCmd struct {
	Keyword string `env:"CHROMEMARKS_KEYWORD" default:"chrome" help:"Keyword that starts a search"`
	LogFile string `name:"log-file" type:"path" help:"Write logs to this file"`
}

// McpCmd is the "mcp" subcommand.
type McpCmd struct{}
