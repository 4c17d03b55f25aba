package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidEntries(t *testing.T) {
	v, err := New([]Entry{
		{ID: "rust", Patterns: []string{"rust"}},
		{ID: "javascript", Patterns: []string{"javascript", "js"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, []string{"rust", "javascript"}, v.IDs())
}

func TestNew_RejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantMsg string
	}{
		{
			name:    "no entries",
			entries: nil,
			wantMsg: "no skill entries",
		},
		{
			name: "empty id",
			entries: []Entry{
				{ID: "   ", Patterns: []string{"rust"}},
			},
			wantMsg: "empty id",
		},
		{
			name: "duplicate id",
			entries: []Entry{
				{ID: "rust", Patterns: []string{"rust"}},
				{ID: "Rust", Patterns: []string{"rustlang"}},
			},
			wantMsg: "duplicate",
		},
		{
			name: "empty pattern list",
			entries: []Entry{
				{ID: "rust", Patterns: nil},
			},
			wantMsg: "no recognition patterns",
		},
		{
			name: "blank pattern",
			entries: []Entry{
				{ID: "rust", Patterns: []string{"  "}},
			},
			wantMsg: "invalid pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMatchedIDs_WholeTokenMatching(t *testing.T) {
	v, err := New([]Entry{
		{ID: "react", Patterns: []string{"react"}},
		{ID: "java", Patterns: []string{"java"}},
		{ID: "c++", Patterns: []string{"c++"}},
		{ID: "sql", Patterns: []string{"sql"}},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "whole token matches",
			text: "Built UIs with React and services in Java.",
			want: []string{"react", "java"},
		},
		{
			name: "no partial match inside a longer word",
			text: "Measured the reaction to the change.",
			want: nil,
		},
		{
			name: "java does not match javascript",
			text: "Wrote javascript for the frontend.",
			want: nil,
		},
		{
			name: "sql does not match inside postgresql",
			text: "We run postgresql in production.",
			want: nil,
		},
		{
			name: "non-word token edge still matches",
			text: "Ten years of C++ experience.",
			want: []string{"c++"},
		},
		{
			name: "case insensitive",
			text: "REACT, react, React",
			want: []string{"react"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "punctuation only",
			text: "?!... --- ,,,",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.MatchedIDs(tt.text))
		})
	}
}

func TestMatchedIDs_AliasesCollapseToOneID(t *testing.T) {
	v, err := New([]Entry{
		{ID: "javascript", Patterns: []string{"javascript", "js"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"javascript"}, v.MatchedIDs("js and javascript everywhere"))
	assert.Equal(t, []string{"javascript"}, v.MatchedIDs("only js here"))
}

func TestDefault_LoadsAndMatchesKnownSkills(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v.Len(), 15)

	matched := v.MatchedIDs("Rust, Docker, PostgreSQL, Python, node.js and natural language processing")
	assert.Contains(t, matched, "rust")
	assert.Contains(t, matched, "docker")
	assert.Contains(t, matched, "postgresql")
	assert.Contains(t, matched, "python")
	assert.Contains(t, matched, "nodejs")
	assert.Contains(t, matched, "nlp")
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{"skills": [{"id": "go", "patterns": ["go", "golang"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, v.IDs())
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "not JSON",
			content: "skills: [go]",
			wantMsg: "not valid JSON",
		},
		{
			name:    "missing skills key",
			content: `{"vocabulary": []}`,
			wantMsg: "does not match schema",
		},
		{
			name:    "empty skills array",
			content: `{"skills": []}`,
			wantMsg: "does not match schema",
		},
		{
			name:    "entry without patterns",
			content: `{"skills": [{"id": "go"}]}`,
			wantMsg: "does not match schema",
		},
		{
			name:    "unknown field",
			content: `{"skills": [{"id": "go", "patterns": ["go"], "weight": 3}]}`,
			wantMsg: "does not match schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vocab.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
