package chrome

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/chromemarks"
)

// Ensure Store implements chromemarks.BookmarkStore at compile time.
var _ chromemarks.BookmarkStore = (*Store)(nil)

// Store reads bookmarks files from disk. It does no time-based caching of
// its own, but it skips re-parsing a file whose content has not changed
// since the previous load of the same path.
type Store struct {
	files    chromemarks.FileReader
	favicons chromemarks.FaviconResolver

	// parsed holds the last successful parse of each path, replaced when
	// the content changes. It grows only with the number of distinct paths,
	// one per profile, and shares its slices with callers' caches.
	mu     sync.Mutex
	parsed map[string]parsedFile
}

type parsedFile struct {
	digest    uint64
	bookmarks []*chromemarks.Bookmark
}

// NewStore creates a new Store.
func NewStore(files chromemarks.FileReader, favicons chromemarks.FaviconResolver) *Store {
	return &Store{
		files:    files,
		favicons: favicons,
		parsed:   make(map[string]parsedFile),
	}
}

// Load reads and parses the bookmarks file at path.
func (s *Store) Load(ctx context.Context, path string) ([]*chromemarks.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.files.ReadFile(path)
	if err != nil {
		return nil, chromemarks.Errorf(chromemarks.EFILEREAD, "cannot read bookmarks file %q: %w", path, err)
	}

	digest := xxhash.Sum64(data)
	s.mu.Lock()
	prev, ok := s.parsed[path]
	s.mu.Unlock()
	if ok && prev.digest == digest {
		return prev.bookmarks, nil
	}

	bookmarks, err := Parse(data, s.favicons)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.parsed[path] = parsedFile{digest: digest, bookmarks: bookmarks}
	s.mu.Unlock()

	return bookmarks, nil
}

// Len returns the number of paths with a remembered parse.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.parsed)
}
