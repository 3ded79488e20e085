// Package launcher adapts the bookmark search to a keyword-driven launcher:
// it matches the keyword, debounces input, and turns results into rows.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/fwojciec/chromemarks"
	"github.com/google/uuid"
)

// Plugin defaults.
const (
	Name           = "Chrome Bookmarks"
	DefaultKeyword = "chrome"
)

// Row titles shown when there are no bookmark results to display.
const (
	HintTitle  = "Keep typing to search through your Chrome bookmarks"
	ErrorTitle = "Error fetching bookmarks"
)

// Item is a single row shown by the launcher. Informational rows have no URL.
type Item struct {
	ID       string
	Title    string
	Subtitle string
	Icon     string
	URL      string
}

// Display renders rows produced by the plugin. Show may be called from a
// goroutine other than the one that called Query.
type Display interface {
	Show(items []Item)
}

// Plugin answers launcher input of the form "<keyword> <term>".
type Plugin struct {
	Keyword   string
	Profile   string
	Searcher  chromemarks.BookmarkSearcher
	Display   Display
	Opener    chromemarks.URLOpener
	Clipboard chromemarks.Clipboard
	Debouncer *Debouncer
	Logger    *slog.Logger

	mu          sync.Mutex
	pattern     *regexp.Regexp
	compiledFor string

	// gen counts Query calls. Rows are shown only for the latest one.
	showMu sync.Mutex
	gen    uint64
}

// NewPlugin returns a Plugin with the default keyword, profile and delay.
func NewPlugin(searcher chromemarks.BookmarkSearcher, display Display) *Plugin {
	return &Plugin{
		Keyword:   DefaultKeyword,
		Searcher:  searcher,
		Display:   display,
		Debouncer: NewDebouncer(DefaultDelay),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// Query handles raw launcher input. It reports whether the input was
// addressed to this plugin. Searches run asynchronously after the debounce
// delay and deliver their rows through the Display. A search still running
// when newer input arrives completes, but its rows are dropped.
func (p *Plugin) Query(ctx context.Context, input string) bool {
	gen := p.next()
	term, ok := p.match(input)
	if !ok {
		p.Debouncer.Stop()
		return false
	}
	if term == "" {
		p.Debouncer.Stop()
		p.show(gen, []Item{{Title: HintTitle}})
		return true
	}
	profile := p.Profile
	p.Debouncer.Do(func() {
		p.search(ctx, gen, profile, term)
	})
	return true
}

func (p *Plugin) next() uint64 {
	p.showMu.Lock()
	defer p.showMu.Unlock()
	p.gen++
	return p.gen
}

// show displays items if no Query has arrived since the one numbered gen.
func (p *Plugin) show(gen uint64, items []Item) bool {
	p.showMu.Lock()
	defer p.showMu.Unlock()
	if gen != p.gen {
		return false
	}
	p.Display.Show(items)
	return true
}

func (p *Plugin) match(input string) (string, bool) {
	keyword := p.Keyword
	if keyword == "" {
		keyword = DefaultKeyword
	}
	p.mu.Lock()
	if p.pattern == nil || p.compiledFor != keyword {
		p.pattern = regexp.MustCompile(`^` + regexp.QuoteMeta(keyword) + `\s(.*)`)
		p.compiledFor = keyword
	}
	re := p.pattern
	p.mu.Unlock()

	m := re.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func (p *Plugin) search(ctx context.Context, gen uint64, profile, term string) {
	id := uuid.New().String()
	logger := p.Logger.With("query", id)

	bookmarks, err := p.Searcher.Search(ctx, profile, term)
	if err != nil {
		logger.Error("search failed", "term", term, "err", err)
		p.show(gen, []Item{{ID: id, Title: ErrorTitle}})
		return
	}
	if len(bookmarks) == 0 {
		p.show(gen, []Item{{ID: id, Title: fmt.Sprintf("No bookmarks found matching %s", term)}})
		return
	}

	items := make([]Item, 0, len(bookmarks))
	for _, b := range bookmarks {
		items = append(items, Item{
			ID:       id,
			Title:    b.Title,
			Subtitle: b.Folder,
			Icon:     b.Favicon,
			URL:      b.URL,
		})
	}
	if !p.show(gen, items) {
		logger.Debug("search superseded", "term", term, "count", len(items))
		return
	}
	logger.Debug("search done", "term", term, "count", len(items))
}

// Select opens the item's URL. Rows without a URL are ignored.
func (p *Plugin) Select(item Item) error {
	if item.URL == "" {
		return nil
	}
	if p.Opener == nil {
		return chromemarks.Errorf(chromemarks.EINTERNAL, "no URL opener configured")
	}
	return p.Opener.Open(item.URL)
}

// Copy puts the item's URL on the clipboard. Rows without a URL are ignored.
func (p *Plugin) Copy(item Item) error {
	if item.URL == "" {
		return nil
	}
	if p.Clipboard == nil {
		return chromemarks.Errorf(chromemarks.EINTERNAL, "no clipboard configured")
	}
	return p.Clipboard.Copy(item.URL)
}
