// Package synth builds retrieval-augmented generation requests for document
// sections and invokes the external generation capability.
package synth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mfeldman/termsmith/internal/prompts"
	"github.com/mfeldman/termsmith/internal/registry"
	"github.com/mfeldman/termsmith/internal/types"
)

const (
	// genericTopK is the retrieval depth for the per-section path
	genericTopK = 12
	// privacyTopK is the retrieval depth for the specialized privacy path
	privacyTopK = 5

	promptFile = "sections.json"
)

// Strategy decides how one synthesis call retrieves context and builds its
// generation prompt. The generic per-section path and the specialized
// whole-document privacy path are two implementations of the same seam.
type Strategy interface {
	// Query returns the retrieval query for a section
	Query(section string, docType types.DocType) string
	// TopK returns how many reference passages to retrieve
	TopK() int
	// Prompt materializes the generation prompt from the request and context
	Prompt(section string, docType types.DocType, req Request, context string) (string, error)
}

// SectionStrategy is the registry-driven generic path: one retrieval query
// and one prompt per section, with musts injected from the registry.
type SectionStrategy struct {
	Registry *registry.Registry
}

// Query builds the retrieval query "<docType> <section> section"
func (s *SectionStrategy) Query(section string, docType types.DocType) string {
	return fmt.Sprintf("%s %s section", docType.PromptLabel(), section)
}

// TopK returns the generic retrieval depth
func (s *SectionStrategy) TopK() int {
	return genericTopK
}

// Prompt renders the per-section template with musts, product variables,
// tone, and jurisdiction names
func (s *SectionStrategy) Prompt(section string, docType types.DocType, req Request, context string) (string, error) {
	template, err := prompts.Get(promptFile, "section")
	if err != nil {
		return "", err
	}

	varsJSON, err := json.MarshalIndent(req.ProductVars, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal product variables: %w", err)
	}

	return prompts.Format(template, map[string]string{
		"SectionName":     section,
		"DocType":         docType.PromptLabel(),
		"MustHaves":       renderMusts(s.Registry.Lookup(docType, section)),
		"ProductVarsJSON": string(varsJSON),
		"Tone":            req.Tone.PromptLabel(),
		"Jurisdictions":   strings.Join(req.JurisdictionNames, ", "),
		"Context":         context,
	}), nil
}

// PrivacyPolicyStrategy is the specialized privacy path: a single fixed
// retrieval query and one whole-document prompt driven by the full profile.
type PrivacyPolicyStrategy struct {
	Profile *types.CompanyProfile
}

// Query returns the fixed privacy retrieval query
func (s *PrivacyPolicyStrategy) Query(_ string, _ types.DocType) string {
	return "privacy policy data collection legal bases GDPR CCPA"
}

// TopK returns the specialized retrieval depth
func (s *PrivacyPolicyStrategy) TopK() int {
	return privacyTopK
}

// Prompt renders the whole-document privacy template with the full profile
func (s *PrivacyPolicyStrategy) Prompt(_ string, _ types.DocType, req Request, context string) (string, error) {
	template, err := prompts.Get(promptFile, "privacy_policy")
	if err != nil {
		return "", err
	}

	profileJSON, err := json.MarshalIndent(s.Profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}
	varsJSON, err := json.MarshalIndent(req.ProductVars, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal product variables: %w", err)
	}

	return prompts.Format(template, map[string]string{
		"ProfileJSON":     string(profileJSON),
		"ProductVarsJSON": string(varsJSON),
		"Jurisdictions":   strings.Join(req.JurisdictionNames, ", "),
		"Context":         context,
	}), nil
}

// renderMusts renders the musts list as a bulleted block. An empty list
// yields an empty block so unregistered sections still generate.
func renderMusts(musts []string) string {
	if len(musts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, must := range musts {
		b.WriteString("\n- ")
		b.WriteString(must)
	}
	return b.String()
}
