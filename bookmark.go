package chromemarks

import (
	"context"
	"strings"
)

// DefaultProfile is the name of the profile Chrome creates on first run.
const DefaultProfile = "Default"

// Bookmark is a single bookmark as shown to the user.
type Bookmark struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Folder  string `json:"folder"`  // Immediate parent folder, empty at top level
	Favicon string `json:"favicon"` // Derived from URL
}

// ProfileOrDefault returns profile, or DefaultProfile if profile is empty.
func ProfileOrDefault(profile string) string {
	if profile == "" {
		return DefaultProfile
	}
	return profile
}

// BookmarkStore loads the bookmarks contained in a bookmarks file.
type BookmarkStore interface {
	// Load reads and parses the bookmarks file at path.
	// Returns EFILEREAD if the file cannot be read and EMALFORMED if it
	// does not contain valid JSON. A file without a "roots" object yields
	// an empty list.
	Load(ctx context.Context, path string) ([]*Bookmark, error)
}

// BookmarkSearcher searches a profile's bookmarks by title.
type BookmarkSearcher interface {
	// Search returns the bookmarks of profile whose title contains term,
	// ignoring case, in file order. An empty profile means DefaultProfile.
	Search(ctx context.Context, profile, term string) ([]*Bookmark, error)
}

// FilterByTitle returns the bookmarks whose title contains term, ignoring
// case. Relative order is preserved. The result is never nil.
func FilterByTitle(bookmarks []*Bookmark, term string) []*Bookmark {
	needle := strings.ToLower(term)
	matches := make([]*Bookmark, 0)
	for _, b := range bookmarks {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matches = append(matches, b)
		}
	}
	return matches
}
