// Package types provides type definitions for structured data used throughout the termsmith system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocType identifies a generated legal document type
type DocType string

// Supported document types
const (
	DocTypeToS     DocType = "tos"
	DocTypePrivacy DocType = "privacy"
)

// Title returns the level-1 document title used by the assembler
func (d DocType) Title() string {
	switch d {
	case DocTypeToS:
		return "Terms of Service"
	case DocTypePrivacy:
		return "Privacy Policy"
	default:
		return string(d)
	}
}

// PromptLabel returns the document-type label embedded in generation prompts
func (d DocType) PromptLabel() string {
	switch d {
	case DocTypeToS:
		return "ToS"
	case DocTypePrivacy:
		return "Privacy"
	default:
		return string(d)
	}
}

// Tone is the requested writing style for generated documents
type Tone string

// Supported tones
const (
	TonePlain  Tone = "plain"
	ToneFormal Tone = "formal"
)

// PromptLabel returns the human-readable tone label embedded in generation prompts
func (t Tone) PromptLabel() string {
	if t == ToneFormal {
		return "formal"
	}
	return "plain english"
}

// Jurisdiction is a short code denoting a legal regime a document must address
type Jurisdiction string

// Supported jurisdiction codes
const (
	JurisdictionUS    Jurisdiction = "US"
	JurisdictionEU    Jurisdiction = "EU"
	JurisdictionUK    Jurisdiction = "UK"
	JurisdictionCA    Jurisdiction = "CA"
	JurisdictionAU    Jurisdiction = "AU"
	JurisdictionIL    Jurisdiction = "IL"
	JurisdictionOther Jurisdiction = "Other"
)

// jurisdictionNames maps jurisdiction codes to display names used in prompts
var jurisdictionNames = map[Jurisdiction]string{
	JurisdictionUS:    "United States",
	JurisdictionEU:    "European Union",
	JurisdictionUK:    "United Kingdom",
	JurisdictionCA:    "Canada",
	JurisdictionAU:    "Australia",
	JurisdictionIL:    "Israel",
	JurisdictionOther: "Other",
}

// DisplayName returns the human-readable name for a jurisdiction code.
// Unknown codes pass through unchanged so generation degrades gracefully.
func (j Jurisdiction) DisplayName() string {
	if name, ok := jurisdictionNames[j]; ok {
		return name
	}
	return string(j)
}

// SupportedJurisdictions returns a copy of the code-to-name table.
func SupportedJurisdictions() map[Jurisdiction]string {
	out := make(map[Jurisdiction]string, len(jurisdictionNames))
	for code, name := range jurisdictionNames {
		out[code] = name
	}
	return out
}

// JurisdictionDisplayNames maps a list of codes to their display names, preserving order
func JurisdictionDisplayNames(codes []Jurisdiction) []string {
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, code.DisplayName())
	}
	return names
}
