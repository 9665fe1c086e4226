package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/corpus"
	"github.com/mfeldman/termsmith/internal/llm"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the retrieval corpus from a CSV of reference policy URLs",
	Long: `Reads a CSV with "Terms URL" and "Privacy URL" columns, fetches each
page, extracts the text, splits it into overlapping chunks, embeds the
chunks and stores them in the corpus database.`,
	RunE: runIngest,
}

var (
	ingestConfigPath string
	ingestCSVPath    string
)

func init() {
	ingestCmd.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config.json file")
	ingestCmd.Flags().StringVar(&ingestCSVPath, "csv", "", "Path to the source URL CSV (overrides config 'sources_csv')")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(ingestConfigPath)
	if err != nil {
		return err
	}
	csvPath := ingestCSVPath
	if csvPath == "" {
		csvPath = cfg.SourcesCSV
	}
	if csvPath == "" {
		return fmt.Errorf("source CSV path is required (use --csv or 'sources_csv' in config)")
	}

	apiKey, err := requireAPIKey(cfg)
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
	}

	llmCfg := llm.DefaultConfig().WithEmbeddingModel(cfg.EmbeddingModel)
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	store, err := corpus.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to corpus database: %w", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize corpus schema: %w", err)
	}

	count, err := corpus.NewIngestor(client, store).IngestCSV(ctx, csvPath)
	if err != nil {
		return err
	}
	fmt.Printf("Ingested %d chunks from %s\n", count, csvPath)
	return nil
}
