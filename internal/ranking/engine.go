package ranking

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Engine scores job postings against a candidate skill set. It holds only
// immutable configuration (vocabulary and dimensions), so a single Engine
// is safe for concurrent use and keeps no state across calls.
type Engine struct {
	normalizer *skills.Normalizer
	dims       []Dimension
}

// Option configures an Engine.
type Option func(*Engine)

// WithDimensions replaces the default scoring dimensions. The replacement
// is validated by NewEngine.
func WithDimensions(dims []Dimension) Option {
	return func(e *Engine) {
		e.dims = dims
	}
}

// NewEngine creates an Engine over the given vocabulary. The weighting
// configuration is validated here; an invalid one fails construction,
// never a later Rank call.
func NewEngine(v *vocab.Vocabulary, opts ...Option) (*Engine, error) {
	e := &Engine{
		normalizer: skills.NewNormalizer(v),
		dims:       DefaultDimensions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := validateDimensions(e.dims); err != nil {
		return nil, err
	}
	return e, nil
}

// Rank scores every job against the candidate skill set and returns
// results sorted by score descending, ties keeping input order. A nil
// topK (or one >= len(jobs)) returns all results; topK == 0 returns an
// empty slice; a negative topK is rejected with InvalidTopKError.
func (e *Engine) Rank(candidate skills.Set, jobs []types.JobPosting, topK *int) ([]types.MatchResult, error) {
	if topK != nil && *topK < 0 {
		return nil, &InvalidTopKError{TopK: *topK}
	}

	results := make([]types.MatchResult, len(jobs))

	// Jobs are independent; score them concurrently, writing by index so
	// the pre-sort order stays the input order.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range jobs {
		g.Go(func() error {
			results[i] = e.scoreJob(candidate, &jobs[i])
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK != nil && *topK < len(results) {
		results = results[:*topK]
	}
	return results, nil
}

// scoreJob computes the weighted composite score, matched skills, and
// explanation for a single job.
func (e *Engine) scoreJob(candidate skills.Set, job *types.JobPosting) types.MatchResult {
	jobSet := e.resolveJobSet(job)
	input := ScoreInput{Candidate: candidate, Job: jobSet}

	total := 0.0
	parts := make([]string, 0, len(e.dims))
	for _, dim := range e.dims {
		component := dim.Score(input)
		total += dim.Weight * component
		parts = append(parts, fmt.Sprintf("%s=%.3f", dim.Name, component))
	}

	return types.MatchResult{
		JobID:         job.ID,
		Score:         roundScore(100.0 * total),
		MatchedSkills: candidate.Intersect(jobSet).Sorted(),
		Explanation:   strings.Join(parts, " "),
	}
}

// resolveJobSet derives the job's skill set: declared required_skills are
// normalized as literal identifiers and take precedence; otherwise skills
// are inferred from the description through the vocabulary.
func (e *Engine) resolveJobSet(job *types.JobPosting) skills.Set {
	if len(job.RequiredSkills) > 0 {
		return skills.FromList(job.RequiredSkills)
	}
	return e.normalizer.Normalize(job.Description)
}

// roundScore rounds to 3 decimal places for stable output comparisons.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
