package main

import (
	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/llm"
	"github.com/mfeldman/termsmith/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Starts an HTTP server exposing document generation, profile management
and corpus ingestion. Mutating routes require a bearer token issued by
POST /api/auth/token against the configured admin password.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	apiKey, err := requireAPIKey(cfg)
	if err != nil {
		return err
	}
	databaseURL, err := requireDatabaseURL(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
		ProfilesDir: cfg.ProfilesDir,
		LLM: llm.DefaultConfig().
			WithGenerationModel(cfg.GenerationModel).
			WithEmbeddingModel(cfg.EmbeddingModel),
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
