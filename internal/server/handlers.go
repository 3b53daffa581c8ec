package server

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadMemory is how much of a multipart body is held in memory before
// spilling to disk.
const maxUploadMemory = 32 << 20

// matchResponse is the JSON body returned by POST /match.
type matchResponse struct {
	RunID        string                `json:"run_id"`
	Requirements types.JobRequirements `json:"requirements"`
	Processed    int                   `json:"processed"`
	Results      []types.MatchResult   `json:"results"`
}

// handleMatch accepts a multipart form with a job description and resume
// files, and responds with the ranked match results. Unreadable uploads
// degrade to sentinel records rather than failing the request.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	job := strings.TrimSpace(r.FormValue("job"))
	if job == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing job description field 'job'")
		return
	}

	uploads := r.MultipartForm.File["resumes"]
	if len(uploads) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no resume files uploaded under 'resumes'")
		return
	}

	topN := s.cfg.TopN
	if value := r.FormValue("top_n"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			s.errorResponse(w, http.StatusBadRequest, "invalid top_n value")
			return
		}
		topN = parsed
	}

	minScore := s.cfg.MinScore
	if value := r.FormValue("min_score"); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 || parsed > 100 {
			s.errorResponse(w, http.StatusBadRequest, "invalid min_score value")
			return
		}
		minScore = parsed
	}

	records := make([]types.CandidateRecord, 0, len(uploads))
	for _, upload := range uploads {
		record := s.extractUpload(r.Context(), upload)
		record.ID = uuid.New().String()
		records = append(records, record)
	}

	results, err := s.matcher.MatchAll(r.Context(), records, job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "matching failed: "+err.Error())
		return
	}

	pool := types.NewPool()
	for _, result := range results {
		pool.Add(result)
	}
	ranked := pool.FilterByScore(minScore)
	if topN > 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}

	s.jsonResponse(w, http.StatusOK, matchResponse{
		RunID:        uuid.New().String(),
		Requirements: matching.DeriveRequirements(job, s.vocab),
		Processed:    pool.Len(),
		Results:      ranked,
	})
}

// extractUpload reads one uploaded resume and extracts its candidate
// record. Any failure yields a sentinel record for that file.
func (s *Server) extractUpload(ctx context.Context, upload *multipart.FileHeader) types.CandidateRecord {
	file, err := upload.Open()
	if err != nil {
		return s.extractor.FailedDocument(err, upload.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxFileSize+1))
	if err != nil {
		return s.extractor.FailedDocument(err, upload.Filename)
	}
	if int64(len(data)) > s.cfg.MaxFileSize {
		return s.extractor.FailedDocument(
			fmt.Errorf("file exceeds size limit of %d bytes", s.cfg.MaxFileSize), upload.Filename)
	}

	return s.extractor.ExtractDocument(ctx, data, ingestion.DetectFormat(upload.Filename), upload.Filename)
}
