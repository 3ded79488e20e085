package chrome

import (
	"context"
	"runtime"

	"github.com/fwojciec/chromemarks"
)

// Ensure Searcher implements chromemarks.BookmarkSearcher at compile time.
var _ chromemarks.BookmarkSearcher = (*Searcher)(nil)

// Searcher searches the bookmarks file of a Chrome profile.
type Searcher struct {
	Store chromemarks.BookmarkStore

	// Platform selects the bookmarks file location. Follows runtime.GOOS.
	Platform string

	// Env supplies the base directories used to locate the file.
	Env Env
}

// NewSearcher creates a Searcher for the current platform and environment.
func NewSearcher(store chromemarks.BookmarkStore) *Searcher {
	return &Searcher{
		Store:    store,
		Platform: runtime.GOOS,
		Env:      OSEnv(),
	}
}

// Path returns the bookmarks file location for profile.
func (s *Searcher) Path(profile string) string {
	return ResolvePath(s.Platform, profile, s.Env)
}

// Search returns the bookmarks of profile whose title contains term,
// ignoring case.
func (s *Searcher) Search(ctx context.Context, profile, term string) ([]*chromemarks.Bookmark, error) {
	path := s.Path(profile)
	if path == "" {
		return nil, chromemarks.Errorf(chromemarks.EFILEREAD, "no bookmarks file location for platform %q", s.Platform)
	}

	bookmarks, err := s.Store.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return chromemarks.FilterByTitle(bookmarks, term), nil
}
