// Package profilestore persists company profiles as JSON files on disk.
// Every write is validated against an embedded JSON Schema and the
// profile's structural rules before it touches the filesystem.
package profilestore

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mfeldman/termsmith/internal/types"
)

//go:embed profile.schema.json
var profileSchemaJSON string

// Summary is the listing view of a stored profile.
type Summary struct {
	ProfileID        string `json:"profile_id"`
	ProfileName      string `json:"profile_name"`
	CompanyLegalName string `json:"company_legal_name"`
}

// Store reads and writes profiles under a single directory,
// one <profile_id>.json file per profile.
type Store struct {
	dir    string
	schema *gojsonschema.Schema
}

// New creates the profile directory if needed and compiles the schema.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(profileSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile profile schema: %w", err)
	}
	return &Store{dir: dir, schema: schema}, nil
}

// Create validates and writes a new profile. An empty ProfileID gets a
// fresh UUID; a provided ID that already exists is an error.
func (s *Store) Create(profile *types.CompanyProfile) (*types.CompanyProfile, error) {
	if profile.ProfileID == "" {
		profile.ProfileID = uuid.NewString()
	}
	if err := s.validate(profile); err != nil {
		return nil, err
	}
	path, err := s.path(profile.ProfileID)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		return nil, &AlreadyExistsError{ID: profile.ProfileID}
	}
	if err := s.write(path, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Read loads a profile by ID.
func (s *Store) Read(id string) (*types.CompanyProfile, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to read profile %s: %w", id, err)
	}
	var profile types.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", id, err)
	}
	return &profile, nil
}

// Update replaces an existing profile. The stored ID wins over any ID
// inside the payload.
func (s *Store) Update(id string, profile *types.CompanyProfile) (*types.CompanyProfile, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to stat profile %s: %w", id, err)
	}
	profile.ProfileID = id
	if err := s.validate(profile); err != nil {
		return nil, err
	}
	if err := s.write(path, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Delete removes a stored profile.
func (s *Store) Delete(id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &NotFoundError{ID: id}
		}
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}

// List returns summaries for every stored profile, skipping files that
// fail to parse.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile directory: %w", err)
	}
	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var profile types.CompanyProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			continue
		}
		summaries = append(summaries, Summary{
			ProfileID:        profile.ProfileID,
			ProfileName:      profile.ProfileName,
			CompanyLegalName: profile.Organization.CompanyLegalName,
		})
	}
	return summaries, nil
}

func (s *Store) validate(profile *types.CompanyProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ValidationError{Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return &ValidationError{Message: strings.Join(msgs, "; ")}
	}
	if err := profile.Validate(); err != nil {
		return &ValidationError{Message: "structural validation failed", Cause: err}
	}
	return nil
}

func (s *Store) path(id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", &ValidationError{Message: fmt.Sprintf("invalid profile ID %q", id), Cause: err}
	}
	return filepath.Join(s.dir, id+".json"), nil
}

func (s *Store) write(path string, profile *types.CompanyProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", profile.ProfileID, err)
	}
	return nil
}
