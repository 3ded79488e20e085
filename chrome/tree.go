package chrome

import "github.com/fwojciec/chromemarks"

// NodeTypeFolder is the type of nodes that contain other nodes.
const NodeTypeFolder = "folder"

// Node is a node of the bookmark tree as stored in the bookmarks file.
type Node struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Entry is a leaf node tagged with the name of its immediate parent folder.
type Entry struct {
	Node
	Folder string
}

// Flatten walks children depth-first and returns every non-folder node in
// pre-order. Each entry records the name of the folder that directly
// contains it; nodes at the top level of children get an empty folder.
func Flatten(children []Node) []Entry {
	return flatten(nil, children, "")
}

func flatten(entries []Entry, children []Node, folder string) []Entry {
	for _, child := range children {
		if child.Type == NodeTypeFolder {
			entries = flatten(entries, child.Children, child.Name)
			continue
		}
		entries = append(entries, Entry{Node: child, Folder: folder})
	}
	return entries
}

// Normalize converts a flattened entry into a Bookmark. The URL is passed
// through unvalidated.
func Normalize(e Entry, favicons chromemarks.FaviconResolver) *chromemarks.Bookmark {
	return &chromemarks.Bookmark{
		Title:   e.Name,
		URL:     e.URL,
		Folder:  e.Folder,
		Favicon: favicons.Favicon(e.URL),
	}
}
