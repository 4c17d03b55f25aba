package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract canonical skills from a text file",
	Long:  "Run the skill normalizer over a plain text file and print the canonical skill identifiers found, sorted, as JSON.",
	RunE:  runExtractSkills,
}

var (
	extractInputFile  string
	extractVocabFile  string
	extractOutputFile string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to plain text file (required)")
	extractSkillsCmd.Flags().StringVar(&extractVocabFile, "vocab", "", "Path to a vocabulary JSON file (default: built-in vocabulary)")
	extractSkillsCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = extractSkillsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	vocabulary, err := loadVocabularyFlag(extractVocabFile)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	found := newNormalizer(vocabulary).Normalize(string(text))
	return writeJSON(extractOutputFile, types.ExtractResponse{Skills: found.Sorted()})
}

// loadVocabularyFlag loads the vocabulary named by a --vocab flag, falling
// back to the built-in default when the flag is empty.
func loadVocabularyFlag(path string) (*vocab.Vocabulary, error) {
	if path == "" {
		v, err := vocab.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in vocabulary: %w", err)
		}
		return v, nil
	}
	v, err := vocab.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return v, nil
}

func newNormalizer(v *vocab.Vocabulary) *skills.Normalizer {
	return skills.NewNormalizer(v)
}
