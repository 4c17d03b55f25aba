package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadBytes caps the size of document uploads to /parse.
const maxUploadBytes = 10 << 20 // 10 MiB

// handleMatch scores the submitted jobs against the candidate and returns
// the ranked results.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match request: "+err.Error())
		return
	}

	candidate := s.normalizer.Normalize(req.Candidate.RawText)

	results, err := s.engine.Rank(candidate, req.Jobs, req.TopK)
	if err != nil {
		var invalidTopK *ranking.InvalidTopKError
		if errors.As(err, &invalidTopK) {
			s.errorResponse(w, http.StatusBadRequest, invalidTopK.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleExtract returns the canonical skills found in the submitted text.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ExtractResponse{
		Skills: s.normalizer.Normalize(req.Text).Sorted(),
	})
}

// handleParse extracts plain text from an uploaded document and returns
// it verbatim. No skill extraction happens here.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := s.extractor.Extract(r.Context(), header.Filename, data)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Printf("Error writing text response: %v", err)
	}
}
