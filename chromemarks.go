// Package chromemarks provides title search over a Google Chrome profile's
// bookmarks file for use from a launcher. It locates the platform-specific
// bookmarks file, flattens its folder tree into a list of bookmarks, and
// serves cached substring search over that list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., chrome/, memo/, tui/).
package chromemarks
