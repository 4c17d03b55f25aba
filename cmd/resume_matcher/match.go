package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a candidate text file",
	Long:  "Extract the candidate skill set from a text file, score a JSON file of job postings against it, and print the ranked match results as JSON.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobsFile   string
	matchTopK       int
	matchVocabFile  string
	matchOutputFile string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to candidate text file (required)")
	matchCmd.Flags().StringVarP(&matchJobsFile, "jobs", "j", "", "Path to JSON file with an array of job postings (required)")
	matchCmd.Flags().IntVarP(&matchTopK, "top-k", "k", -1, "Return only the top K results (negative: return all)")
	matchCmd.Flags().StringVar(&matchVocabFile, "vocab", "", "Path to a vocabulary JSON file (default: built-in vocabulary)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	vocabulary, err := loadVocabularyFlag(matchVocabFile)
	if err != nil {
		return err
	}

	engine, err := ranking.NewEngine(vocabulary)
	if err != nil {
		return fmt.Errorf("failed to create ranking engine: %w", err)
	}

	resumeText, err := os.ReadFile(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobsData, err := os.ReadFile(matchJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []types.JobPosting
	if err := json.Unmarshal(jobsData, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs JSON: %w", err)
	}

	candidate := newNormalizer(vocabulary).Normalize(string(resumeText))

	var topK *int
	if matchTopK >= 0 {
		topK = &matchTopK
	}

	results, err := engine.Rank(candidate, jobs, topK)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	return writeJSON(matchOutputFile, results)
}

// writeJSON marshals v with indentation and writes it to path, or stdout
// when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
