package search

import (
	"strings"
	"unicode/utf8"
)

// MatchSpan marks a matched range in rune offsets, end exclusive.
type MatchSpan struct {
	Start int
	End   int
}

// Matches reports whether name contains query, ignoring case. The empty query
// matches every name.
func Matches(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// Matcher caches the folded query so a filter pass lowers it only once.
type Matcher struct {
	query  string
	folded string
}

// NewMatcher prepares a matcher for query.
func NewMatcher(query string) Matcher {
	return Matcher{query: query, folded: strings.ToLower(query)}
}

// Query returns the raw query text.
func (m Matcher) Query() string {
	return m.query
}

// Match is Matches with the query folded up front.
func (m Matcher) Match(name string) bool {
	if m.folded == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), m.folded)
}

// FindSpan locates the first case-insensitive occurrence of query in name for
// highlighting. It reports false when there is nothing to highlight or when
// case folding changes the rune count of name, since the offsets would no
// longer line up with the displayed text.
func FindSpan(name, query string) (MatchSpan, bool) {
	if query == "" || name == "" {
		return MatchSpan{}, false
	}
	lowerName := strings.ToLower(name)
	if utf8.RuneCountInString(lowerName) != utf8.RuneCountInString(name) {
		return MatchSpan{}, false
	}
	lowerQuery := strings.ToLower(query)
	byteIdx := strings.Index(lowerName, lowerQuery)
	if byteIdx < 0 {
		return MatchSpan{}, false
	}
	start := utf8.RuneCountInString(lowerName[:byteIdx])
	return MatchSpan{
		Start: start,
		End:   start + utf8.RuneCountInString(lowerQuery),
	}, true
}
