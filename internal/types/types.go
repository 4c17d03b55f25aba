// Package types provides type definitions for the match request/response
// surface shared by the HTTP server and the CLI.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Candidate is the per-request candidate input: a display name and the
// free-form resume text skills are extracted from.
type Candidate struct {
	Name    string `json:"name,omitempty"`
	RawText string `json:"raw_text"`
}

// JobPosting is one job to score. RequiredSkills, when non-empty, take
// precedence over skills inferred from Description.
type JobPosting struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// MatchRequest is the body of POST /match.
type MatchRequest struct {
	Candidate Candidate    `json:"candidate"`
	Jobs      []JobPosting `json:"jobs" validate:"dive"`
	TopK      *int         `json:"top_k,omitempty"`
}

// MatchResult is one scored job. Score is in [0,100] rounded to at most
// 3 decimals; MatchedSkills is the candidate/job intersection in
// lexicographic order.
type MatchResult struct {
	JobID         string   `json:"job_id"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	Explanation   string   `json:"explanation"`
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse lists the canonical skills found in the submitted text.
type ExtractResponse struct {
	Skills []string `json:"skills"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
