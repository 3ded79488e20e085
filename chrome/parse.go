package chrome

import (
	"encoding/json"

	"github.com/fwojciec/chromemarks"
	"github.com/tidwall/gjson"
)

// Parse decodes the contents of a bookmarks file. Roots are visited in the
// order they appear in the document. A document without a "roots" object
// has no bookmarks.
func Parse(data []byte, favicons chromemarks.FaviconResolver) ([]*chromemarks.Bookmark, error) {
	if !gjson.ValidBytes(data) {
		return nil, chromemarks.Errorf(chromemarks.EMALFORMED, "bookmarks file is not valid JSON")
	}

	roots := gjson.GetBytes(data, "roots")
	if !roots.IsObject() {
		return []*chromemarks.Bookmark{}, nil
	}

	var entries []Entry
	var err error
	roots.ForEach(func(name, root gjson.Result) bool {
		children := root.Get("children")
		if !children.IsArray() {
			return true
		}
		var nodes []Node
		if e := json.Unmarshal([]byte(children.Raw), &nodes); e != nil {
			err = chromemarks.Errorf(chromemarks.EMALFORMED, "bookmarks root %q: %w", name.String(), e)
			return false
		}
		entries = append(entries, Flatten(nodes)...)
		return true
	})
	if err != nil {
		return nil, err
	}

	bookmarks := make([]*chromemarks.Bookmark, len(entries))
	for i, e := range entries {
		bookmarks[i] = Normalize(e, favicons)
	}
	return bookmarks, nil
}
