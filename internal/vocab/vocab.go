// Package vocab provides the canonical skill vocabulary: an immutable,
// process-wide set of skill identifiers with their recognition patterns.
package vocab

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry declares one canonical skill: a unique identifier and the literal
// tokens (including synonym aliases) that are recognized as mentions of it.
type Entry struct {
	ID       string   `json:"id"`
	Patterns []string `json:"patterns"`
}

// File is the on-disk shape of a vocabulary configuration.
type File struct {
	Skills []Entry `json:"skills"`
}

// Vocabulary holds compiled recognition patterns for each canonical skill.
// It is immutable after construction and safe for concurrent reads.
type Vocabulary struct {
	entries []compiledEntry
}

type compiledEntry struct {
	id       string
	patterns []*regexp.Regexp
}

// New builds a Vocabulary from declared entries. It rejects duplicate
// canonical identifiers, empty identifiers, and empty pattern lists.
func New(entries []Entry) (*Vocabulary, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Message: "vocabulary has no skill entries"}
	}

	seen := make(map[string]bool, len(entries))
	compiled := make([]compiledEntry, 0, len(entries))

	for _, entry := range entries {
		id := strings.ToLower(strings.TrimSpace(entry.ID))
		if id == "" {
			return nil, &ConfigError{Message: "skill entry has an empty id"}
		}
		if seen[id] {
			return nil, &ConfigError{Message: fmt.Sprintf("duplicate canonical skill id %q", id)}
		}
		seen[id] = true

		if len(entry.Patterns) == 0 {
			return nil, &ConfigError{Message: fmt.Sprintf("skill %q has no recognition patterns", id)}
		}

		patterns := make([]*regexp.Regexp, 0, len(entry.Patterns))
		for _, pattern := range entry.Patterns {
			re, err := compilePattern(pattern)
			if err != nil {
				return nil, &ConfigError{
					Message: fmt.Sprintf("skill %q has an invalid pattern %q", id, pattern),
					Cause:   err,
				}
			}
			patterns = append(patterns, re)
		}

		compiled = append(compiled, compiledEntry{id: id, patterns: patterns})
	}

	return &Vocabulary{entries: compiled}, nil
}

// MatchedIDs returns the canonical identifiers of all skills mentioned in
// text, in vocabulary declaration order. A skill matches when any of its
// patterns occurs as a case-insensitive whole token.
func (v *Vocabulary) MatchedIDs(text string) []string {
	if text == "" {
		return nil
	}

	var matched []string
	for _, entry := range v.entries {
		for _, re := range entry.patterns {
			if re.MatchString(text) {
				matched = append(matched, entry.id)
				break
			}
		}
	}
	return matched
}

// IDs returns all canonical skill identifiers in declaration order.
func (v *Vocabulary) IDs() []string {
	ids := make([]string, len(v.entries))
	for i, entry := range v.entries {
		ids[i] = entry.id
	}
	return ids
}

// Len returns the number of canonical skills in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// compilePattern turns a literal token into a case-insensitive regexp.
// Word boundaries are anchored only where the token edge is a word
// character, so tokens like "c++" still match ("+" has no \b after it).
func compilePattern(pattern string) (*regexp.Regexp, error) {
	token := strings.TrimSpace(pattern)
	if token == "" {
		return nil, fmt.Errorf("pattern is empty")
	}

	var sb strings.Builder
	sb.WriteString("(?i)")
	if isWordChar(rune(token[0])) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(token))
	if isWordChar(rune(token[len(token)-1])) {
		sb.WriteString(`\b`)
	}
	return regexp.Compile(sb.String())
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
