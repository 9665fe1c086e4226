package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/corpus"
	"github.com/mfeldman/termsmith/internal/llm"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify API key, database connectivity and corpus state",
	RunE:  runVerify,
}

var verifyConfigPath string

func init() {
	verifyCmd.Flags().StringVar(&verifyConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(verifyConfigPath)
	if err != nil {
		return err
	}

	failed := false

	apiKey, err := requireAPIKey(cfg)
	if err != nil {
		fmt.Printf("[FAIL] API key: %v\n", err)
		failed = true
	} else {
		client, err := llm.NewClient(ctx, llm.DefaultConfig().WithEmbeddingModel(cfg.EmbeddingModel), apiKey)
		if err != nil {
			fmt.Printf("[FAIL] LLM client: %v\n", err)
			failed = true
		} else {
			if _, err := client.EmbedText(ctx, "connectivity check"); err != nil {
				fmt.Printf("[FAIL] Embedding call: %v\n", err)
				failed = true
			} else {
				fmt.Println("[ OK ] API key and embedding model")
			}
			_ = client.Close()
		}
	}

	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		fmt.Printf("[FAIL] Database URL: %v\n", err)
		failed = true
	} else {
		store, err := corpus.Connect(ctx, databaseURL)
		if err != nil {
			fmt.Printf("[FAIL] Database connection: %v\n", err)
			failed = true
		} else {
			count, err := store.Count(ctx)
			switch {
			case err != nil:
				fmt.Printf("[WARN] Corpus table not ready (run 'termsmith ingest'): %v\n", err)
			case count == 0:
				fmt.Println("[WARN] Corpus is empty (run 'termsmith ingest')")
			default:
				fmt.Printf("[ OK ] Corpus: %d chunks\n", count)
			}
			store.Close()
		}
	}

	if failed {
		return fmt.Errorf("setup verification failed")
	}
	fmt.Println("Setup verified")
	return nil
}
