package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/hawkerdev/hawker/internal/bazaar"
)

// State is the canonical browse criteria: free-text search, category,
// condition, and page number. Empty string means "no constraint". State is
// a value type; mutations go through the With* methods so a filter change
// and its page reset are always a single transition.
type State struct {
	Search    string
	Category  string
	Condition string
	Page      int
}

// New returns the default state: no constraints, page 1.
func New() State {
	return State{Page: 1}
}

// WithSearch returns a copy with the search text replaced and the page
// reset to 1.
func (s State) WithSearch(search string) State {
	s.Search = strings.TrimSpace(search)
	s.Page = 1
	return s
}

// WithCategory returns a copy with the category replaced and the page
// reset to 1.
func (s State) WithCategory(category string) State {
	s.Category = category
	s.Page = 1
	return s
}

// WithCondition returns a copy with the condition replaced and the page
// reset to 1.
func (s State) WithCondition(condition string) State {
	s.Condition = condition
	s.Page = 1
	return s
}

// WithPage returns a copy on the given page. Pages below 1 clamp to 1.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// IsDefault reports whether the state carries no constraints beyond page 1.
func (s State) IsDefault() bool {
	return s == New()
}

// Encode renders the state as a shareable query string. Empty fields are
// omitted, and page 1 encodes as no page token at all, so the default state
// encodes to "".
func (s State) Encode() string {
	values := url.Values{}
	if s.Search != "" {
		values.Set("q", s.Search)
	}
	if s.Category != "" {
		values.Set("category", s.Category)
	}
	if s.Condition != "" {
		values.Set("condition", s.Condition)
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	return values.Encode()
}

// Decode parses a query string back into a State. Decode is total: a
// malformed query, an unparseable or sub-1 page token, or an unknown
// category/condition falls back to the default for that field. An absent
// page token decodes as page 1.
func Decode(raw string) State {
	s := New()
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return s
	}

	s.Search = strings.TrimSpace(values.Get("q"))

	if category := values.Get("category"); bazaar.ValidCategory(category) {
		s.Category = category
	}
	if condition := values.Get("condition"); bazaar.ValidCondition(condition) {
		s.Condition = condition
	}

	if token := values.Get("page"); token != "" {
		if page, err := strconv.Atoi(token); err == nil && page >= 1 {
			s.Page = page
		}
	}
	return s
}
