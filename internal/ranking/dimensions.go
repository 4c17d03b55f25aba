// Package ranking provides the engine that scores job postings against a
// candidate skill set and returns ranked, explainable match results.
package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/skills"
)

// Default weights for scoring dimensions. Experience and education are
// reserved for future extraction and currently contribute 0.0.
const (
	skillSimilarityWeight = 0.60
	experienceWeight      = 0.25
	educationWeight       = 0.15
)

// weightSumTolerance absorbs float64 representation error when checking
// that dimension weights sum to 1.0.
const weightSumTolerance = 1e-9

// ScoreInput carries the resolved skill sets for one candidate/job pair.
type ScoreInput struct {
	Candidate skills.Set
	Job       skills.Set
}

// ScoreFunc computes one scoring dimension in [0,1] for a candidate/job pair.
type ScoreFunc func(in ScoreInput) float64

// Dimension is a named, independently pluggable weighted scoring term.
type Dimension struct {
	Name   string
	Weight float64
	Score  ScoreFunc
}

// DefaultDimensions returns the standard scoring dimensions: skill-set
// Jaccard similarity plus the reserved experience and education terms.
func DefaultDimensions() []Dimension {
	return []Dimension{
		{
			Name:   "skill_jaccard",
			Weight: skillSimilarityWeight,
			Score: func(in ScoreInput) float64 {
				return skills.Jaccard(in.Candidate, in.Job)
			},
		},
		{Name: "experience", Weight: experienceWeight, Score: zeroScore},
		{Name: "education", Weight: educationWeight, Score: zeroScore},
	}
}

// zeroScore is the placeholder for dimensions that are not computed yet.
func zeroScore(ScoreInput) float64 {
	return 0.0
}

// validateDimensions checks the weighting configuration: every dimension
// needs a name and a score function, names must be unique, weights must be
// non-negative and sum to 1.0.
func validateDimensions(dims []Dimension) error {
	if len(dims) == 0 {
		return &ConfigError{Message: "no scoring dimensions configured"}
	}

	seen := make(map[string]bool, len(dims))
	sum := 0.0
	for _, dim := range dims {
		if dim.Name == "" {
			return &ConfigError{Message: "scoring dimension has an empty name"}
		}
		if seen[dim.Name] {
			return &ConfigError{Message: fmt.Sprintf("duplicate scoring dimension %q", dim.Name)}
		}
		seen[dim.Name] = true
		if dim.Score == nil {
			return &ConfigError{Message: fmt.Sprintf("scoring dimension %q has no score function", dim.Name)}
		}
		if dim.Weight < 0 {
			return &ConfigError{Message: fmt.Sprintf("scoring dimension %q has a negative weight", dim.Name)}
		}
		sum += dim.Weight
	}

	if math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigError{Message: fmt.Sprintf("dimension weights sum to %v, want 1.0", sum)}
	}
	return nil
}
