// Package server provides the HTTP REST API for document generation,
// profile management and corpus ingestion.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfeldman/termsmith/internal/config"
	"github.com/mfeldman/termsmith/internal/corpus"
	"github.com/mfeldman/termsmith/internal/generate"
	"github.com/mfeldman/termsmith/internal/llm"
	"github.com/mfeldman/termsmith/internal/profilestore"
	"github.com/mfeldman/termsmith/internal/registry"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *corpus.Store
	profiles   *profilestore.Store
	client     llm.Client
	pipeline   *generate.Pipeline
	ingestor   *corpus.Ingestor
	tokens     *TokenService
	authCfg    *config.AuthConfig
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	ProfilesDir string
	LLM         *llm.Config
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	store, err := corpus.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmCfg := cfg.LLM
	if llmCfg == nil {
		llmCfg = llm.DefaultConfig()
	}
	client, err := llm.NewClient(context.Background(), llmCfg, cfg.APIKey)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	profiles, err := profilestore.New(cfg.ProfilesDir)
	if err != nil {
		store.Close()
		client.Close()
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}

	authCfg, err := config.NewAuthConfig()
	if err != nil {
		store.Close()
		client.Close()
		return nil, fmt.Errorf("failed to create auth config: %w", err)
	}

	retriever := corpus.NewRetriever(client, store)
	s := &Server{
		store:    store,
		profiles: profiles,
		client:   client,
		pipeline: generate.New(retriever, client, registry.Default()),
		ingestor: corpus.NewIngestor(client, store),
		tokens:   NewTokenService(authCfg),
		authCfg:  authCfg,
	}

	mux := http.NewServeMux()

	// Open routes
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("POST /api/auth/token", s.handleIssueToken)
	mux.HandleFunc("GET /api/profiles", s.handleListProfiles)
	mux.HandleFunc("GET /api/profiles/{id}", s.handleGetProfile)

	// Authenticated routes
	mux.HandleFunc("POST /api/generate", s.requireAuth(s.handleGenerate))
	mux.HandleFunc("POST /api/generate-from-profile/{id}", s.requireAuth(s.handleGenerateFromProfile))
	mux.HandleFunc("POST /api/privacy/generate/{id}", s.requireAuth(s.handleGeneratePrivacy))
	mux.HandleFunc("POST /api/profiles", s.requireAuth(s.handleCreateProfile))
	mux.HandleFunc("PUT /api/profiles/{id}", s.requireAuth(s.handleUpdateProfile))
	mux.HandleFunc("DELETE /api/profiles/{id}", s.requireAuth(s.handleDeleteProfile))
	mux.HandleFunc("POST /api/ingest", s.requireAuth(s.handleIngest))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for multi-section generation
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.client.Close()
	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
