package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	v, err := vocab.Default()
	require.NoError(t, err)
	engine, err := NewEngine(v, opts...)
	require.NoError(t, err)
	return engine
}

func intPtr(v int) *int {
	return &v
}

func TestRank_ScenarioDeclaredSkills(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust", "docker", "postgresql", "python")
	jobs := []types.JobPosting{
		{ID: "job-1", Title: "Backend Engineer", RequiredSkills: []string{"rust", "docker", "postgresql"}},
	}

	results, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// intersection 3, union 4 -> jaccard 0.75 -> 100 * 0.60 * 0.75 = 45.0
	assert.Equal(t, "job-1", results[0].JobID)
	assert.InDelta(t, 45.0, results[0].Score, 1e-9)
	assert.Equal(t, []string{"docker", "postgresql", "rust"}, results[0].MatchedSkills)
	assert.Contains(t, results[0].Explanation, "skill_jaccard=0.750")
}

func TestRank_ScenarioNoOverlap(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust", "docker", "postgresql", "python")
	jobs := []types.JobPosting{
		{ID: "frontend", RequiredSkills: []string{"react", "javascript", "html", "css"}},
	}

	results, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 0.0, results[0].Score)
	assert.NotNil(t, results[0].MatchedSkills)
	assert.Empty(t, results[0].MatchedSkills)
	assert.Contains(t, results[0].Explanation, "skill_jaccard=0.000")
}

func TestRank_ExplanationGoldenFormat(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust", "docker", "postgresql", "python")
	jobs := []types.JobPosting{
		{ID: "job-1", RequiredSkills: []string{"rust", "docker", "postgresql"}},
	}

	results, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "skill_jaccard=0.750 experience=0.000 education=0.000", results[0].Explanation)
}

func TestRank_DescriptionInferenceWhenNoDeclaredSkills(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust", "docker")
	jobs := []types.JobPosting{
		{
			ID:          "inferred",
			Description: "We want someone comfortable with Rust and Docker in a Linux environment.",
		},
	}

	results, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// job set {rust, docker, linux}: intersection 2, union 3
	assert.Equal(t, []string{"docker", "rust"}, results[0].MatchedSkills)
	assert.Contains(t, results[0].Explanation, "skill_jaccard=0.667")
}

func TestRank_DeclaredSkillsTakePrecedenceOverDescription(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("python")
	jobs := []types.JobPosting{
		{
			ID:             "declared-wins",
			Description:    "Python, Rust, Docker and Kubernetes all over the description.",
			RequiredSkills: []string{"react"},
		},
	}

	results, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Description mentions python but the declared list is the job set.
	assert.Empty(t, results[0].MatchedSkills)
	assert.Equal(t, 0.0, results[0].Score)
}

func TestRank_SortsDescendingWithStableTies(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust", "docker")
	jobs := []types.JobPosting{
		{ID: "tie-a", RequiredSkills: []string{"react"}},
		{ID: "best", RequiredSkills: []string{"rust", "docker"}},
		{ID: "tie-b", RequiredSkills: []string{"html"}},
		{ID: "middle", RequiredSkills: []string{"rust", "docker", "python"}},
		{ID: "tie-c", RequiredSkills: []string{"css"}},
	}

	results, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	require.Len(t, results, 5)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.JobID
	}
	// Zero-score ties keep their input order.
	assert.Equal(t, []string{"best", "middle", "tie-a", "tie-b", "tie-c"}, ids)
}

func TestRank_TopK(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust")
	jobs := []types.JobPosting{
		{ID: "a", RequiredSkills: []string{"rust"}},
		{ID: "b", RequiredSkills: []string{"react"}},
		{ID: "c", RequiredSkills: []string{"rust", "docker"}},
	}

	tests := []struct {
		name    string
		topK    *int
		wantLen int
	}{
		{name: "nil returns all", topK: nil, wantLen: 3},
		{name: "zero returns empty", topK: intPtr(0), wantLen: 0},
		{name: "truncates to k", topK: intPtr(2), wantLen: 2},
		{name: "k equal to len returns all", topK: intPtr(3), wantLen: 3},
		{name: "k beyond len returns all", topK: intPtr(10), wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := engine.Rank(candidate, jobs, tt.topK)
			require.NoError(t, err)
			assert.Len(t, results, tt.wantLen)
		})
	}
}

func TestRank_NegativeTopKRejected(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Rank(skills.NewSet("rust"), []types.JobPosting{{ID: "a"}}, intPtr(-1))
	require.Error(t, err)

	var invalidTopK *InvalidTopKError
	require.ErrorAs(t, err, &invalidTopK)
	assert.Equal(t, -1, invalidTopK.TopK)
}

func TestRank_EmptyJobListIsNotAnError(t *testing.T) {
	engine := testEngine(t)

	results, err := engine.Rank(skills.NewSet("rust"), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRank_EmptyCandidateAndEmptyJobScoreZero(t *testing.T) {
	engine := testEngine(t)

	results, err := engine.Rank(skills.NewSet(), []types.JobPosting{{ID: "no-skills"}}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Both sets empty: union is empty, similarity defined as 0.0.
	assert.Equal(t, 0.0, results[0].Score)
	assert.Contains(t, results[0].Explanation, "skill_jaccard=0.000")
}

func TestRank_IsPureAcrossCalls(t *testing.T) {
	engine := testEngine(t)
	candidate := skills.NewSet("rust", "docker")
	jobs := []types.JobPosting{
		{ID: "a", RequiredSkills: []string{"rust"}},
		{ID: "b", RequiredSkills: []string{"docker", "rust"}},
	}

	first, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)
	second, err := engine.Rank(candidate, jobs, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
