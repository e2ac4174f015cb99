package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap per request.
var pathPatterns = []*PathPattern{
	// News routes with UUIDs
	{Pattern: regexp.MustCompile(`^/news/` + uuidSegment + `/view$`), Template: "/news/:id/view"},
	{Pattern: regexp.MustCompile(`^/news/` + uuidSegment + `$`), Template: "/news/:id"},
	{Pattern: regexp.MustCompile(`^/news/source/[^/]+$`), Template: "/news/source/:source"},

	// Admin crawl job routes
	{Pattern: regexp.MustCompile(`^/admin/crawl/jobs/` + uuidSegment + `$`), Template: "/admin/crawl/jobs/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs (e.g. /news/9f1b...) become template
// form (/news/:id). Static paths and search endpoints remain unchanged.
//
// Examples:
//
//	NormalizePath("/news/9f1b4c52-0000-0000-0000-000000000000")  // "/news/:id"
//	NormalizePath("/news/search")                                // unchanged
//	NormalizePath("/health")                                     // unchanged
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/news/search?keyword=fed")  // "/news/search"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found; static paths like /health, /metrics, /news/search
	// pass through unchanged.
	return path
}
