package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/chromemarks"
)

// Compile-time interface verification.
var (
	_ chromemarks.BookmarkStore    = (*LoggingBookmarkStore)(nil)
	_ chromemarks.BookmarkSearcher = (*LoggingSearcher)(nil)
)

// LoggingBookmarkStore wraps a BookmarkStore with logging.
type LoggingBookmarkStore struct {
	next   chromemarks.BookmarkStore
	logger *slog.Logger
}

// NewLoggingBookmarkStore creates a new LoggingBookmarkStore.
func NewLoggingBookmarkStore(next chromemarks.BookmarkStore, logger *slog.Logger) *LoggingBookmarkStore {
	return &LoggingBookmarkStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingBookmarkStore) Load(ctx context.Context, path string) (bookmarks []*chromemarks.Bookmark, err error) {
	defer func(begin time.Time) {
		s.logger.Info("bookmarks load",
			"path", path,
			"count", len(bookmarks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, path)
}

// LoggingSearcher wraps a BookmarkSearcher with logging.
type LoggingSearcher struct {
	next   chromemarks.BookmarkSearcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next chromemarks.BookmarkSearcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, profile, term string) (bookmarks []*chromemarks.Bookmark, err error) {
	defer func(begin time.Time) {
		s.logger.Info("bookmarks search",
			"profile", chromemarks.ProfileOrDefault(profile),
			"term", term,
			"count", len(bookmarks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, profile, term)
}
