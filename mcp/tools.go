// Package mcp exposes bookmark search as a Model Context Protocol tool.
package mcp

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/chromemarks"
)

// SearchToolName is the name clients call the search tool by.
const SearchToolName = "search_bookmarks"

// NewServer returns an MCP server with the bookmark tools registered.
func NewServer(searcher chromemarks.BookmarkSearcher, profile, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"chromemarks",
		version,
		server.WithToolCapabilities(true),
	)
	RegisterTools(s, searcher, profile)
	return s
}

// RegisterTools adds the bookmark tools to s. profile is used when a call
// does not name one.
func RegisterTools(s *server.MCPServer, searcher chromemarks.BookmarkSearcher, profile string) {
	s.AddTool(SearchTool(), SearchHandler(searcher, profile))
}

// Serve runs s over the given streams until ctx is canceled or input ends.
func Serve(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, stdin, stdout)
}

// SearchTool describes the search tool.
func SearchTool() mcp.Tool {
	return mcp.NewTool(SearchToolName,
		mcp.WithDescription("Search Chrome bookmarks by title. Matching is a case-insensitive substring match. Returns one line per bookmark: title, URL and folder."),
		mcp.WithString("term",
			mcp.Description("Text to look for in bookmark titles"),
			mcp.Required(),
		),
		mcp.WithString("profile",
			mcp.Description("Chrome profile directory name, e.g. Default or \"Profile 1\""),
		),
	)
}

// SearchHandler answers search tool calls.
func SearchHandler(searcher chromemarks.BookmarkSearcher, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		term := strings.TrimSpace(req.GetString("term", ""))
		if term == "" {
			return toolError(chromemarks.Errorf(chromemarks.EINVALID, "term is required"))
		}

		requested := strings.TrimSpace(req.GetString("profile", ""))
		if requested == "" {
			requested = profile
		}

		bookmarks, err := searcher.Search(ctx, requested, term)
		if err != nil {
			return toolError(err)
		}
		if len(bookmarks) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No bookmarks found matching %s", term)), nil
		}

		var sb strings.Builder
		for _, b := range bookmarks {
			fmt.Fprintf(&sb, "%s  %s  %s\n", b.Title, b.URL, b.Folder)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(chromemarks.ErrorMessage(err)), nil
}
