package mock

import (
	"context"

	"github.com/fwojciec/chromemarks"
)

// Compile-time interface verification.
var (
	_ chromemarks.BookmarkStore    = (*BookmarkStore)(nil)
	_ chromemarks.BookmarkSearcher = (*BookmarkSearcher)(nil)
)

// BookmarkStore is a mock implementation of chromemarks.BookmarkStore.
type BookmarkStore struct {
	LoadFn func(ctx context.Context, path string) ([]*chromemarks.Bookmark, error)
}

func (s *BookmarkStore) Load(ctx context.Context, path string) ([]*chromemarks.Bookmark, error) {
	return s.LoadFn(ctx, path)
}

// BookmarkSearcher is a mock implementation of chromemarks.BookmarkSearcher.
type BookmarkSearcher struct {
	SearchFn func(ctx context.Context, profile, term string) ([]*chromemarks.Bookmark, error)
}

func (s *BookmarkSearcher) Search(ctx context.Context, profile, term string) ([]*chromemarks.Bookmark, error) {
	return s.SearchFn(ctx, profile, term)
}
