// Package skills provides the canonical skill set type and the normalizer
// that derives skill sets from free-form text.
package skills

import (
	"sort"
	"strings"
)

// Set is a deduplicated, unordered set of canonical skill identifiers.
type Set map[string]struct{}

// NewSet builds a Set from canonical identifiers as-is.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// FromList builds a Set from declared skill identifiers, normalizing each
// as a literal: lowercased, whitespace-trimmed, blanks dropped, duplicates
// collapsed.
func FromList(raw []string) Set {
	s := make(Set, len(raw))
	for _, id := range raw {
		normalized := strings.ToLower(strings.TrimSpace(id))
		if normalized == "" {
			continue
		}
		s[normalized] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of skills in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted renders the set as a lexicographically sorted slice. It always
// returns a non-nil slice so callers can serialize it as an empty array.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Intersect returns the skills present in both sets.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Union returns the skills present in either set.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Jaccard computes the Jaccard similarity between two skill sets:
// |a ∩ b| / |a ∪ b|. When both sets are empty the union is empty and the
// similarity is defined as 0.0.
func Jaccard(a, b Set) float64 {
	union := len(a.Union(b))
	if union == 0 {
		return 0.0
	}
	return float64(len(a.Intersect(b))) / float64(union)
}
