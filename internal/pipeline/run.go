// Package pipeline provides the high-level orchestration for a matching run:
// read resume files, decode and extract candidate records, score them against
// the job description, and report the ranking.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxConcurrentFiles bounds how many resume files are read and extracted in
// parallel.
const maxConcurrentFiles = 4

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the matching pipeline
type RunOptions struct {
	JobPath          string   // Path to job description text file
	JobText          string   // Inline job description; takes precedence over JobPath
	ResumePaths      []string // Resume files or directories containing them
	Weights          types.Weights
	Similarity       matching.Similarity         // nil selects the lexical strategy
	NameStrategy     extraction.NameStrategy     // optional model-based name extraction
	ExperiencePolicy extraction.ExperiencePolicy // empty selects max-across-all
	TopN             int                         // 0 keeps all results
	MinScore         float64
	MaxFileSize      int64 // 0 uses the ingestion default
	OutPath          string
	Verbose          bool
	OnProgress       ProgressCallback
}

// Report is the JSON-serializable outcome of one matching run.
type Report struct {
	RunID        string                `json:"run_id"`
	CreatedAt    time.Time             `json:"created_at"`
	JobSource    string                `json:"job_source"`
	Requirements types.JobRequirements `json:"requirements"`
	Processed    int                   `json:"processed"`
	Sources      []ingestion.Metadata  `json:"sources"`
	Results      []types.MatchResult   `json:"results"`
}

// resumeExtensions are the file extensions picked up when a resume path is
// a directory.
var resumeExtensions = map[string]bool{
	".txt": true, ".text": true, ".md": true,
	".pdf": true, ".docx": true,
	".html": true, ".htm": true,
}

// RunPipeline executes a full matching run and returns its report.
func RunPipeline(ctx context.Context, opts RunOptions) (*Report, error) {
	runID := uuid.New().String()
	printer := observability.NewPrinter(os.Stdout)

	jobText, jobSource, err := resolveJob(opts)
	if err != nil {
		return nil, err
	}

	paths, err := expandResumePaths(opts.ResumePaths)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no resume files found")
	}

	vocab := skills.Default()
	extractor := newExtractor(vocab, opts)
	weights := opts.Weights
	if weights == (types.Weights{}) {
		weights = types.DefaultWeights()
	}
	matcher := matching.NewMatcher(vocab, opts.Similarity, weights)

	requirements := matching.DeriveRequirements(jobText, vocab)
	if opts.Verbose {
		printer.PrintRequirements(&requirements)
	}

	emitProgress(&opts, runID, "extract", fmt.Sprintf("extracting %d resumes", len(paths)))
	records, sources, err := extractAll(ctx, extractor, paths, opts)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		for i := range records {
			printer.PrintCandidate(&records[i])
		}
	}

	emitProgress(&opts, runID, "match", "scoring candidates")
	results, err := matcher.MatchAll(ctx, records, jobText)
	if err != nil {
		return nil, err
	}

	pool := types.NewPool()
	for _, result := range results {
		pool.Add(result)
	}
	ranked := pool.FilterByScore(opts.MinScore)
	if opts.TopN > 0 && opts.TopN < len(ranked) {
		ranked = ranked[:opts.TopN]
	}

	if opts.Verbose {
		printer.PrintRanking(ranked)
		printer.PrintSummary(ranked)
	}

	report := &Report{
		RunID:        runID,
		CreatedAt:    time.Now().UTC(),
		JobSource:    jobSource,
		Requirements: requirements,
		Processed:    pool.Len(),
		Sources:      sources,
		Results:      ranked,
	}

	if opts.OutPath != "" {
		if err := writeReport(report, opts.OutPath); err != nil {
			return nil, err
		}
		emitProgress(&opts, runID, "report", "report written to "+opts.OutPath)
	}

	return report, nil
}

// resolveJob returns the job description text and a label for the report.
func resolveJob(opts RunOptions) (string, string, error) {
	if opts.JobText != "" {
		return opts.JobText, "(inline)", nil
	}
	if opts.JobPath == "" {
		return "", "", fmt.Errorf("no job description provided")
	}
	data, err := os.ReadFile(opts.JobPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read job description %s: %w", opts.JobPath, err)
	}
	return string(data), opts.JobPath, nil
}

// newExtractor builds the extractor configured by the run options.
func newExtractor(vocab *skills.Vocabulary, opts RunOptions) *extraction.Extractor {
	var extractorOpts []extraction.Option
	if opts.NameStrategy != nil {
		extractorOpts = append(extractorOpts, extraction.WithNameStrategy(opts.NameStrategy))
	}
	if opts.ExperiencePolicy != "" {
		extractorOpts = append(extractorOpts, extraction.WithExperiencePolicy(opts.ExperiencePolicy))
	}
	return extraction.New(vocab, extractorOpts...)
}

// expandResumePaths flattens the given files and directories into a list of
// resume files. Directories are scanned one level deep for known extensions.
func expandResumePaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat resume path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if resumeExtensions[ext] {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	return files, nil
}

// extractAll reads and extracts every resume concurrently. A file that
// cannot be read or decoded yields a sentinel record rather than failing
// the batch, so the output always has one record per input.
func extractAll(ctx context.Context, extractor *extraction.Extractor, paths []string, opts RunOptions) ([]types.CandidateRecord, []ingestion.Metadata, error) {
	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = ingestion.MaxFileSize
	}

	records := make([]types.CandidateRecord, len(paths))
	sources := make([]ingestion.Metadata, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			source := filepath.Base(path)
			format := ingestion.DetectFormat(path)
			data, err := os.ReadFile(path)
			switch {
			case err != nil:
				records[i] = extractor.FailedDocument(err, source)
			case int64(len(data)) > maxSize:
				records[i] = extractor.FailedDocument(fmt.Errorf("file exceeds size limit of %d bytes", maxSize), source)
			default:
				records[i] = extractor.ExtractDocument(ctx, data, format, source)
			}
			records[i].ID = uuid.New().String()
			sources[i] = *ingestion.NewMetadata(source, format, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, sources, nil
}

// writeReport serializes the report as indented JSON.
func writeReport(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
		})
	}
}
