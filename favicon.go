package chromemarks

// FaviconResolver derives a favicon reference from a bookmark URL.
// Implementations must be deterministic and must not fail: a URL they
// cannot interpret yields an empty reference.
type FaviconResolver interface {
	Favicon(url string) string
}
