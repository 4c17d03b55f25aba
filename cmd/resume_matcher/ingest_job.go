package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/types"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting URL into a JobPosting JSON",
	Long:  "Fetch a job posting page, extract its main text, and emit a JobPosting JSON suitable for the match command or the /match endpoint.",
	RunE:  runIngestJob,
}

var (
	ingestURL        string
	ingestID         string
	ingestTitle      string
	ingestUseBrowser bool
	ingestOutputFile string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Job posting URL (required)")
	ingestJobCmd.Flags().StringVar(&ingestID, "id", "", "Job ID to assign (default: random UUID)")
	ingestJobCmd.Flags().StringVar(&ingestTitle, "title", "", "Job title to assign")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "browser", false, "Fall back to a headless browser for JavaScript-rendered pages")
	ingestJobCmd.Flags().StringVarP(&ingestOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = ingestJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	result, err := fetch.URL(ctx, ingestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return fmt.Errorf("failed to extract posting text: %w", err)
	}

	// SPA pages return an empty shell over plain HTTP; re-render in a
	// headless browser when allowed.
	if ingestUseBrowser && fetch.ShouldUseBrowser(text) {
		html, err := fetch.BrowserSimple(ctx, ingestURL, false)
		if err != nil {
			return fmt.Errorf("browser fallback failed: %w", err)
		}
		text, err = fetch.ExtractMainText(html, fetch.JobPostingSelectors())
		if err != nil {
			return fmt.Errorf("failed to extract posting text: %w", err)
		}
	}

	id := ingestID
	if id == "" {
		id = uuid.New().String()
	}

	job := types.JobPosting{
		ID:          id,
		Title:       ingestTitle,
		Description: text,
	}

	return writeJSON(ingestOutputFile, job)
}
