package chromemarks

// URLOpener opens a URL with the user's default handler.
type URLOpener interface {
	Open(url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}
