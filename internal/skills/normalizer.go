package skills

import "github.com/jonathan/resume-matcher/internal/vocab"

// Normalizer maps raw text to a canonical skill set using a fixed
// vocabulary. It is stateless apart from the read-only vocabulary, so a
// single Normalizer is safe for concurrent use.
type Normalizer struct {
	vocabulary *vocab.Vocabulary
}

// NewNormalizer creates a Normalizer over the given vocabulary.
func NewNormalizer(v *vocab.Vocabulary) *Normalizer {
	return &Normalizer{vocabulary: v}
}

// Normalize extracts the canonical skill set mentioned in text. Identical
// input always yields an identical set; text without any recognized skill
// (including empty or punctuation-only text) yields an empty set.
func (n *Normalizer) Normalize(text string) Set {
	return NewSet(n.vocabulary.MatchedIDs(text)...)
}
