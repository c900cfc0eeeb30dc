// Package filter selects menu items by category and free-text query.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
)

// MaxQueryLength is the maximum accepted search query length in bytes.
const MaxQueryLength = 256

// matcher lower-cases once per query. cases.Caser is stateful, so a matcher
// must not be shared between goroutines.
type matcher struct {
	caser  cases.Caser
	needle string
	all    bool
}

func newMatcher(query string) *matcher {
	if strings.TrimSpace(query) == "" {
		return &matcher{all: true}
	}
	c := cases.Lower(language.Und)
	return &matcher{caser: c, needle: c.String(query)}
}

func (m *matcher) match(item *menu.Item) bool {
	if m.all {
		return true
	}
	if m.contains(item.Name) || m.contains(item.Code) {
		return true
	}
	if item.Category != "" && m.contains(item.Category) {
		return true
	}
	return item.Kitchen != "" && m.contains(item.Kitchen)
}

func (m *matcher) contains(field string) bool {
	return strings.Contains(m.caser.String(field), m.needle)
}

// Matches reports whether query is a case-insensitive substring of the
// item's name, code, category or kitchen. Blank queries match every item.
// The query is not trimmed once it is known to be non-blank.
func Matches(item *menu.Item, query string) bool {
	return newMatcher(query).match(item)
}

// Apply keeps items in the selected category (exact match, skipped for
// menu.AllCategories) that match query. Input order is preserved and the
// input slice is never modified.
func Apply(items []menu.Item, category, query string) []menu.Item {
	m := newMatcher(query)
	out := make([]menu.Item, 0, len(items))
	for i := range items {
		if category != menu.AllCategories && items[i].Category != category {
			continue
		}
		if !m.match(&items[i]) {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// Categories returns menu.AllCategories followed by the distinct non-empty
// item categories in order of first appearance.
func Categories(items []menu.Item) []string {
	seen := map[string]struct{}{menu.AllCategories: {}}
	out := []string{menu.AllCategories}
	for i := range items {
		c := items[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
