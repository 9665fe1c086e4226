// Package types provides type definitions for structured data used throughout the termsmith system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ProductVars is the flat product/company record supplied to a generation run.
// It is immutable input: each run receives its own snapshot and the pipeline
// never writes back to it.
type ProductVars struct {
	ProductName    string   `json:"product_name" validate:"required"`
	CompanyLegal   string   `json:"company_legal" validate:"required"`
	ContactEmail   string   `json:"contact_email" validate:"required,email"`
	DataCategories []string `json:"data_categories"`
	Processors     []string `json:"processors"`
	Platforms      []string `json:"platforms"`
	Under13Allowed bool     `json:"under_13_allowed"`

	// Optional fields populated by the profile mapping
	LegalEmail  string `json:"legal_email,omitempty"`
	Address     string `json:"address,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
}

// GenerateRequest is the ad-hoc generation request (Caller A)
type GenerateRequest struct {
	ProductVars   ProductVars    `json:"product_vars" validate:"required"`
	Docs          []DocType      `json:"docs" validate:"min=1,dive,oneof=tos privacy"`
	Tone          Tone           `json:"tone" validate:"omitempty,oneof=plain formal"`
	Jurisdictions []Jurisdiction `json:"jurisdictions" validate:"min=1"`
}

// Validate checks the request against its field constraints, including the
// nested product variables.
func (r *GenerateRequest) Validate() error {
	if err := profileValidator.Struct(r); err != nil {
		return fmt.Errorf("invalid generate request: %w", err)
	}
	return nil
}

// GenerateResponse carries the generated markdown per document type.
// Gap data is never embedded here; gap computation is a separate call
// against the returned text.
type GenerateResponse struct {
	ToSMarkdown     string `json:"tos_md,omitempty"`
	PrivacyMarkdown string `json:"privacy_md,omitempty"`
}
