package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/chromemarks"
	"github.com/fwojciec/chromemarks/chrome"
	"github.com/fwojciec/chromemarks/desktop"
	"github.com/fwojciec/chromemarks/favicon"
	"github.com/fwojciec/chromemarks/fs"
	"github.com/fwojciec/chromemarks/memo"
	cmslog "github.com/fwojciec/chromemarks/slog"
	"github.com/joho/godotenv"
)

// version is reported to MCP clients.
const version = "0.1.0"

func main() {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Platform and Env locate the bookmarks file. Set before calling Run().
	Platform string
	Env      chrome.Env

	// Stdin is read by the mcp command.
	Stdin io.Reader

	// Services for end-to-end testing. Nil fields are wired by Run().
	Searcher  chromemarks.BookmarkSearcher
	Opener    chromemarks.URLOpener
	Clipboard chromemarks.Clipboard
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Platform: runtime.GOOS,
		Env:      chrome.OSEnv(),
		Stdin:    os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chromemarks"),
		kong.Description("Search Chrome bookmarks by title."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'chromemarks --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The terminal UI owns the screen, so its logs go to a file or nowhere.
	logOut := stderr
	if kongCtx.Command() == "tui" {
		logOut = io.Discard
		if cli.Tui.LogFile != "" {
			f, err := os.OpenFile(cli.Tui.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
	}
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	env := m.Env
	if cli.UserDataDir != "" {
		env.UserDataDir = cli.UserDataDir
	}

	// Decorators sit beneath the caches so only real loads and filters
	// are logged.
	store := chrome.NewStore(fs.NewFileReader(), favicon.NewResolver())
	chromeSearcher := &chrome.Searcher{
		Store:    memo.NewBookmarkStore(cmslog.NewLoggingBookmarkStore(store, logger)),
		Platform: m.Platform,
		Env:      env,
	}

	deps.Logger = logger
	deps.Profiles = cli.Profile
	if len(deps.Profiles) == 0 {
		deps.Profiles = []string{chromemarks.DefaultProfile}
	}
	deps.Paths = chromeSearcher
	deps.Searcher = m.Searcher
	if deps.Searcher == nil {
		deps.Searcher = memo.NewSearcher(cmslog.NewLoggingSearcher(chromeSearcher, logger))
	}
	deps.Opener = m.Opener
	if deps.Opener == nil {
		deps.Opener = desktop.NewOpener()
	}
	deps.Clipboard = m.Clipboard
	if deps.Clipboard == nil {
		deps.Clipboard = desktop.NewClipboard()
	}

	return kongCtx.Run(deps)
}
