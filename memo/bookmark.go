package memo

import (
	"context"

	"github.com/fwojciec/chromemarks"
)

// Compile-time interface verification.
var (
	_ chromemarks.BookmarkStore    = (*BookmarkStore)(nil)
	_ chromemarks.BookmarkSearcher = (*Searcher)(nil)
)

// BookmarkStore caches the bookmarks of each file path.
type BookmarkStore struct {
	next  chromemarks.BookmarkStore
	cache *Cache[[]*chromemarks.Bookmark]
}

// NewBookmarkStore wraps next with a cache using the default lifetime and
// pre-fetch settings.
func NewBookmarkStore(next chromemarks.BookmarkStore) *BookmarkStore {
	return NewBookmarkStoreWithCache(next, New[[]*chromemarks.Bookmark](DefaultMaxAge, DefaultPreFetch))
}

// NewBookmarkStoreWithCache wraps next with the given cache.
func NewBookmarkStoreWithCache(next chromemarks.BookmarkStore, cache *Cache[[]*chromemarks.Bookmark]) *BookmarkStore {
	return &BookmarkStore{next: next, cache: cache}
}

// Load returns the cached bookmarks for path, loading them on a miss.
// Callers must not modify the returned slice.
func (s *BookmarkStore) Load(ctx context.Context, path string) ([]*chromemarks.Bookmark, error) {
	return s.cache.Get(ctx, path, func(ctx context.Context) ([]*chromemarks.Bookmark, error) {
		return s.next.Load(ctx, path)
	})
}

// Searcher caches search results per profile and term.
type Searcher struct {
	next  chromemarks.BookmarkSearcher
	cache *Cache[[]*chromemarks.Bookmark]
}

// NewSearcher wraps next with a cache using the default lifetime and
// pre-fetch settings.
func NewSearcher(next chromemarks.BookmarkSearcher) *Searcher {
	return NewSearcherWithCache(next, New[[]*chromemarks.Bookmark](DefaultMaxAge, DefaultPreFetch))
}

// NewSearcherWithCache wraps next with the given cache.
func NewSearcherWithCache(next chromemarks.BookmarkSearcher, cache *Cache[[]*chromemarks.Bookmark]) *Searcher {
	return &Searcher{next: next, cache: cache}
}

// Search returns the cached results for profile and term, searching on a
// miss. The term is part of the key exactly as given. Callers must not
// modify the returned slice.
func (s *Searcher) Search(ctx context.Context, profile, term string) ([]*chromemarks.Bookmark, error) {
	profile = chromemarks.ProfileOrDefault(profile)
	key := profile + "\x00" + term
	return s.cache.Get(ctx, key, func(ctx context.Context) ([]*chromemarks.Bookmark, error) {
		return s.next.Search(ctx, profile, term)
	})
}
