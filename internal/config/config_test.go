package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"profiles_dir": "/data/profiles",
		"generation_model": "gemini-2.5-pro",
		"database_url": "postgres://localhost/termsmith",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/profiles", cfg.ProfilesDir)
	assert.Equal(t, "gemini-2.5-pro", cfg.GenerationModel)
	assert.Equal(t, "postgres://localhost/termsmith", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "{broken"))
		assert.ErrorContains(t, err, "failed to parse config JSON")
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{Port: 8080}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := &Config{Port: 70000}
		assert.ErrorContains(t, cfg.Validate(), "port")
	})

	t.Run("missing sources CSV", func(t *testing.T) {
		cfg := &Config{SourcesCSV: filepath.Join(t.TempDir(), "absent.csv")}
		assert.ErrorContains(t, cfg.Validate(), "sources CSV not found")
	})
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{GenerationModel: "gemini-2.5-pro"}

	merged := cfg.MergeWithDefaults(Config{
		ProfilesDir:     "profiles",
		GenerationModel: "gemini-2.5-flash",
		EmbeddingModel:  "text-embedding-004",
		Port:            8080,
	})

	assert.Equal(t, "profiles", merged.ProfilesDir)
	assert.Equal(t, "gemini-2.5-pro", merged.GenerationModel, "explicit value wins over default")
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel)
	assert.Equal(t, 8080, merged.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("PROFILES_DIR", "/env/profiles")

	cfg := Config{APIKey: "explicit-key"}
	cfg.FromEnv()

	assert.Equal(t, "explicit-key", cfg.APIKey, "explicit value wins over env")
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "/env/profiles", cfg.ProfilesDir)
}
