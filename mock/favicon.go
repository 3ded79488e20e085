package mock

import "github.com/fwojciec/chromemarks"

var _ chromemarks.FaviconResolver = (*FaviconResolver)(nil)

// FaviconResolver is a mock implementation of chromemarks.FaviconResolver.
type FaviconResolver struct {
	FaviconFn func(url string) string
}

func (r *FaviconResolver) Favicon(url string) string {
	return r.FaviconFn(url)
}
