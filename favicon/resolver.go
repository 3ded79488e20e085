// Package favicon derives favicon image URLs from bookmark URLs.
package favicon

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/chromemarks"
	"golang.org/x/net/idna"
)

// DefaultServiceURL is Google's public favicon service.
const DefaultServiceURL = "https://www.google.com/s2/favicons"

// DefaultSize is the requested icon edge length in pixels.
const DefaultSize = 32

var _ chromemarks.FaviconResolver = (*Resolver)(nil)

// Resolver builds favicon service URLs keyed by the bookmark's host.
type Resolver struct {
	ServiceURL string
	Size       int
}

// NewResolver creates a Resolver for the default favicon service.
func NewResolver() *Resolver {
	return &Resolver{ServiceURL: DefaultServiceURL, Size: DefaultSize}
}

// Favicon returns the favicon URL for rawURL, or an empty string if rawURL
// has no host. Internationalized hosts are converted to their ASCII form so
// the same site always maps to the same reference.
func (r *Resolver) Favicon(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	} else {
		host = strings.ToLower(host)
	}
	return fmt.Sprintf("%s?domain=%s&sz=%d", r.ServiceURL, url.QueryEscape(host), r.Size)
}
