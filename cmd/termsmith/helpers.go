package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mfeldman/termsmith/internal/config"
	"github.com/mfeldman/termsmith/internal/corpus"
	"github.com/mfeldman/termsmith/internal/generate"
	"github.com/mfeldman/termsmith/internal/llm"
	"github.com/mfeldman/termsmith/internal/profilestore"
	"github.com/mfeldman/termsmith/internal/registry"
)

// loadMergedConfig loads the optional config file, applies defaults and
// environment fallbacks, and validates the result.
func loadMergedConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		ProfilesDir:     "profiles",
		GenerationModel: llm.DefaultConfig().GenerationModel,
		EmbeddingModel:  llm.DefaultConfig().EmbeddingModel,
		Port:            8080,
	})
	cfg.FromEnv()
	return cfg, nil
}

// requireAPIKey returns the API key from the config or fails.
func requireAPIKey(cfg config.Config) (string, error) {
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	return "", fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or 'api_key' in config)")
}

// requireDatabaseURL returns the corpus database URL or fails.
func requireDatabaseURL(cfg config.Config) (string, error) {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL, nil
	}
	return "", fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in config)")
}

// buildPipeline wires the LLM client, corpus retriever and requirement
// registry into a generation pipeline. The returned cleanup closes the
// underlying connections.
func buildPipeline(ctx context.Context, cfg config.Config) (*generate.Pipeline, func(), error) {
	apiKey, err := requireAPIKey(cfg)
	if err != nil {
		return nil, nil, err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return nil, nil, err
	}

	llmCfg := llm.DefaultConfig().
		WithGenerationModel(cfg.GenerationModel).
		WithEmbeddingModel(cfg.EmbeddingModel)

	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	store, err := corpus.Connect(ctx, databaseURL)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to corpus database: %w", err)
	}

	cleanup := func() {
		store.Close()
		_ = client.Close()
	}

	retriever := corpus.NewRetriever(client, store)
	pipeline := generate.New(retriever, client, registry.Default())
	if cfg.Verbose {
		pipeline = pipeline.WithProgressLogging()
	}
	return pipeline, cleanup, nil
}

// openProfileStore opens the JSON profile store for the configured directory.
func openProfileStore(cfg config.Config) (*profilestore.Store, error) {
	return profilestore.New(cfg.ProfilesDir)
}

// writeDocument writes markdown to a file, or stdout when path is "-".
func writeDocument(path, markdown string) error {
	if path == "-" {
		_, err := fmt.Fprintln(os.Stdout, markdown)
		return err
	}
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
