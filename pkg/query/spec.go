package query

import (
	"sort"
	"strings"
)

// DefaultPageSize is the page size used when a Spec does not set First.
const DefaultPageSize = 250

// Filter is the search filter attached to a connection's query argument.
// The three concrete forms are equivalent: a map becomes sorted "key:value"
// tokens, a slice is used as-is and a plain string is a single token. The
// normalized form is the space joined token string.
type Filter interface {
	clauses() []string
}

type FilterMap map[string]string

func (f FilterMap) clauses() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+":"+f[k])
	}
	return out
}

type FilterClauses []string

func (f FilterClauses) clauses() []string { return f }

type FilterString string

func (f FilterString) clauses() []string {
	if f == "" {
		return nil
	}
	return []string{string(f)}
}

// NormalizeFilter returns the space joined filter clause string for any of
// the Filter forms. A nil filter normalizes to the empty string.
func NormalizeFilter(f Filter) string {
	if f == nil {
		return ""
	}
	return strings.Join(f.clauses(), " ")
}

// Spec describes one paginated connection query.
type Spec struct {
	// QueryName names the outer operation. Optional.
	QueryName string
	// ObjectName is the root object wrapping the connection, e.g.
	// "shopifyPaymentsAccount". Empty for root-level connections.
	ObjectName string
	// ConnectionName is the connection under the object or at the root,
	// e.g. "orders". Required.
	ConnectionName string
	// Fields is the selection inside each node, as raw GraphQL text.
	Fields string
	// Selection is a structured alternative to Fields and wins when set.
	Selection *SelectionSet
	// Filters feeds the connection's query argument.
	Filters Filter
	// First is the page size, DefaultPageSize when zero.
	First int
	// After is the pagination cursor, empty for the first page.
	After string
	// ExtraArgs are additional raw connection arguments, e.g.
	// "sortKey: UPDATED_AT".
	ExtraArgs string
	// UseNodes selects the nodes response shape instead of edges { node }.
	UseNodes bool
}

func (s Spec) nodeSelection() SelectionSet {
	if s.Selection != nil {
		return *s.Selection
	}
	return SelectionSet{Raw: s.Fields}
}
