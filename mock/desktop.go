package mock

import "github.com/fwojciec/chromemarks"

// Compile-time interface verification.
var (
	_ chromemarks.URLOpener = (*URLOpener)(nil)
	_ chromemarks.Clipboard = (*Clipboard)(nil)
)

// URLOpener is a mock implementation of chromemarks.URLOpener.
type URLOpener struct {
	OpenFn func(url string) error
}

func (o *URLOpener) Open(url string) error {
	return o.OpenFn(url)
}

// Clipboard is a mock implementation of chromemarks.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}
