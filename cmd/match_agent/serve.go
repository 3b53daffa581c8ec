package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveSimilarity string
	serveAPIKey     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /match for ranking uploaded resumes against a job description.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveSimilarity, "similarity", "", "Similarity strategy: lexical or embedding")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("similarity") {
		cfg.Similarity = serveSimilarity
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	similarity, client, err := buildSimilarity(ctx, cfg.Similarity, resolveAPIKey(cfg))
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	srv := server.New(server.Config{
		Port:        cfg.Port,
		MaxFileSize: cfg.MaxFileSize,
		Weights:     cfg.ResolveWeights(),
		Similarity:  similarity,
		TopN:        cfg.TopN,
		MinScore:    cfg.MinScore,
	})
	return srv.Start()
}
