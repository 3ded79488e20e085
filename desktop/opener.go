// Package desktop implements the host actions on the local desktop: opening
// URLs in the default browser and copying them to the system clipboard.
package desktop

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/chromemarks"
)

// Compile-time interface verification.
var (
	_ chromemarks.URLOpener = (*Opener)(nil)
	_ chromemarks.Clipboard = (*Clipboard)(nil)
)

// Opener opens URLs with the platform's default handler.
type Opener struct {
	Platform string
	// Run executes the command. Defaults to exec.Cmd.Run.
	Run func(cmd *exec.Cmd) error
}

// NewOpener returns an Opener for the current platform.
func NewOpener() *Opener {
	return &Opener{
		Platform: runtime.GOOS,
		Run:      func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// Open hands rawURL to the platform's default handler.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return chromemarks.Errorf(chromemarks.EINVALID, "cannot open %q: not an absolute URL", rawURL)
	}
	cmd, err := Command(o.Platform, u.String())
	if err != nil {
		return err
	}
	if err := o.Run(cmd); err != nil {
		return fmt.Errorf("open %s: %w", rawURL, err)
	}
	return nil
}

// Command builds the command that opens target on platform.
func Command(platform, target string) (*exec.Cmd, error) {
	switch platform {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		// cmd /c start would interpret & in query strings.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, chromemarks.Errorf(chromemarks.EINVALID, "unsupported operating system: %s", platform)
	}
}

// Clipboard writes to the system clipboard.
type Clipboard struct{}

// NewClipboard returns a Clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy replaces the clipboard contents with text.
func (c *Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return chromemarks.Errorf(chromemarks.EINTERNAL, "clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
