package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Match resumes against a job description",
	Long: `Reads resume files (txt, pdf, docx, html), extracts candidate records,
scores each against the job description and prints the ranking.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	runConfigPath    string
	runJob           string
	runJobText       string
	runJobURL        string
	runResumes       []string
	runWeightsPreset string
	runSimilarity    string
	runPolicy        string
	runTopN          int
	runMinScore      float64
	runOut           string
	runAPIKey        string
	runUseNER        bool
	runVerbose       bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job description text file")
	runCommand.Flags().StringVar(&runJobText, "job-text", "", "Inline job description (mutually exclusive with --job)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	runCommand.Flags().StringSliceVarP(&runResumes, "resumes", "r", nil, "Resume files or directories (repeatable)")
	runCommand.Flags().StringVar(&runWeightsPreset, "weights-preset", "", "Weight preset: default or lexical")
	runCommand.Flags().StringVar(&runSimilarity, "similarity", "", "Similarity strategy: lexical or embedding")
	runCommand.Flags().StringVar(&runPolicy, "experience-policy", "", "Experience aggregation: max or first")
	runCommand.Flags().IntVar(&runTopN, "top", 0, "Keep only the top N results (0 keeps all)")
	runCommand.Flags().Float64Var(&runMinScore, "min-score", 0, "Drop results below this final score")
	runCommand.Flags().StringVarP(&runOut, "out", "o", "", "Write the JSON report to this path")
	runCommand.Flags().BoolVar(&runUseNER, "ner", false, "Use model-based name extraction (requires API key)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed match information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	jobSources := 0
	for _, source := range []string{runJob, runJobText, runJobURL} {
		if source != "" {
			jobSources++
		}
	}
	if jobSources == 0 {
		return fmt.Errorf("a job description is required: pass --job, --job-text or --job-url")
	}
	if jobSources > 1 {
		return fmt.Errorf("--job, --job-text and --job-url are mutually exclusive")
	}

	jobText := runJobText
	if runJobURL != "" {
		jobText, err = fetch.JobPosting(ctx, runJobURL, nil)
		if err != nil {
			return err
		}
	}
	if len(runResumes) == 0 {
		return fmt.Errorf("at least one --resumes path is required")
	}

	weights, err := resolveWeights(cmd, cfg)
	if err != nil {
		return err
	}

	apiKey := resolveAPIKey(cfg)
	similarity, client, err := buildSimilarity(ctx, cfg.Similarity, apiKey)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	var nameStrategy extraction.NameStrategy
	if runUseNER {
		if client == nil {
			client, err = newLLMClient(ctx, apiKey)
			if err != nil {
				return fmt.Errorf("--ner requires an API key: %w", err)
			}
			defer client.Close()
		}
		nameStrategy = extraction.NewNERNameStrategy(client)
	}

	report, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		JobPath:          runJob,
		JobText:          jobText,
		ResumePaths:      runResumes,
		Weights:          weights,
		Similarity:       similarity,
		NameStrategy:     nameStrategy,
		ExperiencePolicy: extraction.ExperiencePolicy(cfg.ExperiencePolicy),
		TopN:             cfg.TopN,
		MinScore:         cfg.MinScore,
		MaxFileSize:      cfg.MaxFileSize,
		OutPath:          runOut,
		Verbose:          runVerbose,
	})
	if err != nil {
		return err
	}

	if !runVerbose {
		for i, result := range report.Results {
			fmt.Printf("#%d %s score=%.2f status=%s\n",
				i+1, result.Candidate.Name, result.FinalScore, result.Status())
		}
	}
	fmt.Printf("Processed %d candidates (run %s)\n", report.Processed, report.RunID)
	return nil
}

// loadMergedConfig loads the optional config file, applies defaults, and
// layers explicitly-set CLI flags on top.
func loadMergedConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Config{}
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
		if runVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if cmd.Flags().Changed("similarity") {
		cfg.Similarity = runSimilarity
	}
	if cmd.Flags().Changed("experience-policy") {
		cfg.ExperiencePolicy = runPolicy
	}
	if cmd.Flags().Changed("top") {
		cfg.TopN = runTopN
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = runMinScore
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveWeights picks the weight profile: preset flag first, then config
// file weights, then the default preset.
func resolveWeights(cmd *cobra.Command, cfg config.Config) (types.Weights, error) {
	if cmd.Flags().Changed("weights-preset") {
		switch runWeightsPreset {
		case "default":
			return types.DefaultWeights(), nil
		case "lexical":
			return types.LexicalWeights(), nil
		default:
			return types.Weights{}, fmt.Errorf("unknown weights preset %q (want default or lexical)", runWeightsPreset)
		}
	}
	return cfg.ResolveWeights(), nil
}

// resolveAPIKey returns the API key from config/flags or the environment.
func resolveAPIKey(cfg config.Config) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// buildSimilarity constructs the configured similarity strategy. The
// returned client is non-nil only for the embedding strategy and must be
// closed by the caller.
func buildSimilarity(ctx context.Context, name, apiKey string) (matching.Similarity, llm.Client, error) {
	switch name {
	case "", config.SimilarityLexical:
		return matching.NewLexicalSimilarity(), nil, nil
	case config.SimilarityEmbedding:
		client, err := newLLMClient(ctx, apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("embedding similarity requires an API key: %w", err)
		}
		return matching.NewEmbeddingSimilarity(client), client, nil
	default:
		return nil, nil, fmt.Errorf("unknown similarity strategy %q", name)
	}
}

func newLLMClient(ctx context.Context, apiKey string) (llm.Client, error) {
	return llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
}
