package dto

import "strings"

// Expansion names a related collection that may be inlined into a response.
type Expansion string

// ExpandProblems inlines a category's problems in place of the link object.
const ExpandProblems Expansion = "problems"

// ExpandSet is the set of expansions requested by a caller, already checked
// against an allow-list. Unknown tokens are dropped during parsing.
type ExpandSet map[Expansion]struct{}

// Has reports whether the expansion was requested.
func (s ExpandSet) Has(expansion Expansion) bool {
	_, ok := s[expansion]
	return ok
}

// ParseExpand splits a comma-separated expand query value and keeps only the
// allowed expansions.
func ParseExpand(raw string, allowed ...Expansion) ExpandSet {
	set := ExpandSet{}
	for _, part := range strings.Split(raw, ",") {
		token := Expansion(strings.TrimSpace(part))
		for _, candidate := range allowed {
			if token == candidate {
				set[candidate] = struct{}{}
			}
		}
	}
	return set
}
