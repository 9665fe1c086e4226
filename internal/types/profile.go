// Package types provides type definitions for structured data used throughout the termsmith system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OrganizationInfo identifies the company behind the product
type OrganizationInfo struct {
	CompanyLegalName    string         `json:"company_legal_name" validate:"required"`
	RegisteredAddress   string         `json:"registered_address" validate:"required"`
	PrivacyEmail        string         `json:"privacy_email" validate:"required,email"`
	LegalNoticesEmail   string         `json:"legal_notices_email" validate:"required,email"`
	JurisdictionsServed []Jurisdiction `json:"jurisdictions_served" validate:"min=1"`
	Languages           []string       `json:"languages,omitempty"`
	EffectiveDate       string         `json:"effective_date" validate:"required,datetime=2006-01-02"`
	VersionLabel        string         `json:"version_label,omitempty"`
	PrivacyPolicyURL    string         `json:"privacy_policy_url,omitempty"`
	TermsURL            string         `json:"terms_url,omitempty"`
}

// ProductInfo describes the product the documents cover
type ProductInfo struct {
	ProductName     string   `json:"product_name" validate:"required"`
	Platforms       []string `json:"platforms,omitempty"`
	ServiceType     string   `json:"service_type,omitempty"`
	HasBetaFeatures bool     `json:"has_beta_features"`
	BetaNote        string   `json:"beta_note,omitempty"`
}

// AudienceEligibility captures the audience and age policy
type AudienceEligibility struct {
	MinimumAge                      int    `json:"minimum_age" validate:"oneof=13 16 18"`
	EEAUKOverride16                 bool   `json:"eea_uk_override_16"`
	AllowUnder13WithParentalConsent bool   `json:"allow_under_13_with_parental_consent"`
	ParentalConsentFlowDescription  string `json:"parental_consent_flow_description,omitempty"`
	AllowOrganizationalUse          bool   `json:"allow_organizational_use"`
}

// DataCategory is one itemized category of collected data
type DataCategory struct {
	Category   string   `json:"category" validate:"required"`
	Source     string   `json:"source" validate:"oneof=user automated third-party"`
	Purposes   []string `json:"purposes" validate:"min=1"`
	Retention  string   `json:"retention,omitempty"`
	SharedWith []string `json:"shared_with"`
}

// VendorInfo describes one third-party vendor
type VendorInfo struct {
	Name           string   `json:"name" validate:"required"`
	Role           string   `json:"role,omitempty" validate:"omitempty,oneof=processor controller service_provider"`
	DataCategories []string `json:"data_categories,omitempty"`
	Regions        []string `json:"regions,omitempty"`
	PolicyURL      string   `json:"policy_url,omitempty"`
	Use            string   `json:"use,omitempty"`
}

// TrackingTechnology describes cookies/SDKs/tracking in use
type TrackingTechnology struct {
	Technology           string            `json:"technology" validate:"required"`
	Tools                []string          `json:"tools,omitempty"`
	ConsentModelByRegion map[string]string `json:"consent_model_by_region,omitempty"`
	CookiePolicyURL      string            `json:"cookie_policy_url,omitempty"`
}

// LegalBases captures GDPR role and lawful-basis data
type LegalBases struct {
	ControllerOrProcessor      string            `json:"controller_or_processor,omitempty" validate:"omitempty,oneof=controller processor"`
	LawfulBasesPerPurpose      map[string]string `json:"lawful_bases_per_purpose,omitempty"`
	LegitimateInterestsText    string            `json:"legitimate_interests_text,omitempty"`
	DPOContact                 string            `json:"dpo_contact,omitempty" validate:"omitempty,email"`
	HasAutomatedDecisionMaking bool              `json:"has_automated_decision_making"`
	ProfilingDisclosure        string            `json:"profiling_disclosure,omitempty"`
}

// USStatePrivacy captures US state privacy-law data (CCPA and successors)
type USStatePrivacy struct {
	SellsOrSharesForAds    bool              `json:"sells_or_shares_for_ads"`
	CollectsSensitivePI    bool              `json:"collects_sensitive_pi"`
	RetentionPerCategory   map[string]string `json:"retention_per_category,omitempty"`
	RequestChannels        []string          `json:"request_channels,omitempty"`
	HasFinancialIncentives bool              `json:"has_financial_incentives"`
	IncentivesDescription  string            `json:"incentives_description,omitempty"`
}

// InternationalTransfers describes cross-border data movement
type InternationalTransfers struct {
	HostingRegions        []string `json:"hosting_regions,omitempty"`
	TransferMechanisms    []string `json:"transfer_mechanisms,omitempty"`
	SupplementaryMeasures string   `json:"supplementary_measures,omitempty"`
}

// SecurityMeasures lists high-level security practices
type SecurityMeasures struct {
	HighLevelMeasures []string `json:"high_level_measures,omitempty"`
}

// UserRights describes the rights-request process per region
type UserRights struct {
	RightsByRegion         map[string][]string `json:"rights_by_region,omitempty"`
	VerificationMethod     string              `json:"verification_method,omitempty"`
	ResponseWindowDays     int                 `json:"response_window_days,omitempty"`
	SupervisorAppealsLinks map[string]string   `json:"supervisor_appeals_links,omitempty"`
}

// AcceptableUsePolicy captures prohibited conduct and UGC policy
type AcceptableUsePolicy struct {
	ProhibitedActs      []string `json:"prohibited_acts" validate:"min=1"`
	UGCEnabled          bool     `json:"ugc_enabled"`
	UGCLicenseToService string   `json:"ugc_license_to_service,omitempty"`
	ModerationAppeals   string   `json:"moderation_appeals,omitempty"`
	DMCAContact         string   `json:"dmca_contact,omitempty" validate:"omitempty,email"`
}

// IntellectualProperty captures IP ownership and licensing policy
type IntellectualProperty struct {
	ServiceIPRetainedByCompany bool   `json:"service_ip_retained_by_company"`
	EndUserLicenseText         string `json:"end_user_license_text,omitempty"`
	FeedbackLicense            string `json:"feedback_license,omitempty"`
	OpenSourceNoticesURL       string `json:"open_source_notices_url,omitempty"`
}

// BillingInfo captures monetization and billing policy
type BillingInfo struct {
	MonetizationModel        string `json:"monetization_model,omitempty" validate:"omitempty,oneof=free freemium paid usage-based"`
	BillingPeriod            string `json:"billing_period,omitempty"`
	HasFreeTrial             bool   `json:"has_free_trial"`
	TrialConversionRule      string `json:"trial_conversion_rule,omitempty"`
	AutoRenewalEnabled       bool   `json:"auto_renewal_enabled"`
	CancellationInstructions string `json:"cancellation_instructions,omitempty"`
	RefundPolicy             string `json:"refund_policy,omitempty"`
	TaxesIncluded            bool   `json:"taxes_included"`
	PriceChangeNoticeDays    int    `json:"price_change_notice_days,omitempty"`
}

// ChangesPolicy captures the change-notice policy
type ChangesPolicy struct {
	ChangeNoticeMethod []string `json:"change_notice_method" validate:"min=1"`
	LeadTimeDays       int      `json:"lead_time_days,omitempty"`
}

// Disclaimers captures warranty disclaimers and liability limits
type Disclaimers struct {
	AsIsDisclaimer               bool     `json:"as_is_disclaimer"`
	LiabilityCapDescription      string   `json:"liability_cap_description" validate:"required"`
	ExcludeIndirectConsequential bool     `json:"exclude_indirect_consequential"`
	CarveOuts                    []string `json:"carve_outs"`
	UserIndemnityEnabled         bool     `json:"user_indemnity_enabled"`
}

// DisputeResolution captures dispute path and venue
type DisputeResolution struct {
	DisputePath            string `json:"dispute_path" validate:"oneof=courts arbitration mediation"`
	Venue                  string `json:"venue" validate:"required"`
	HasClassActionWaiver   bool   `json:"has_class_action_waiver"`
	HasSmallClaimsCarveout bool   `json:"has_small_claims_carveout"`
}

// ExportControls captures export-compliance statements
type ExportControls struct {
	ExportComplianceStatement string `json:"export_compliance_statement,omitempty"`
}

// CompanyProfile is the rich company/product record used to conditionally
// tailor document content. Mandatory sub-objects must be present before the
// generation pipeline runs; callers validate via Validate().
type CompanyProfile struct {
	ProfileID   string `json:"profile_id,omitempty"`
	ProfileName string `json:"profile_name" validate:"required"`

	Organization OrganizationInfo    `json:"organization" validate:"required"`
	Product      ProductInfo         `json:"product" validate:"required"`
	Audience     AudienceEligibility `json:"audience" validate:"required"`

	DataCategories []DataCategory `json:"data_categories" validate:"dive"`
	Vendors        []VendorInfo   `json:"vendors,omitempty" validate:"dive"`

	Tracking               *TrackingTechnology     `json:"tracking,omitempty"`
	LegalBases             *LegalBases             `json:"legal_bases,omitempty"`
	USStatePrivacy         *USStatePrivacy         `json:"us_state_privacy,omitempty"`
	InternationalTransfers *InternationalTransfers `json:"international_transfers,omitempty"`
	Security               *SecurityMeasures       `json:"security,omitempty"`
	UserRights             *UserRights             `json:"user_rights,omitempty"`

	AcceptableUse        AcceptableUsePolicy  `json:"acceptable_use" validate:"required"`
	IntellectualProperty IntellectualProperty `json:"intellectual_property" validate:"required"`
	Billing              *BillingInfo         `json:"billing,omitempty"`
	Changes              ChangesPolicy        `json:"changes_policy" validate:"required"`
	Disclaimers          Disclaimers          `json:"disclaimers" validate:"required"`
	DisputeResolution    DisputeResolution    `json:"dispute_resolution" validate:"required"`
	ExportControls       *ExportControls      `json:"export_controls,omitempty"`
}

// profileValidator is shared across Validate calls; validator.Validate is
// safe for concurrent use.
var profileValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks structural completeness of the profile. This is the
// caller-side validation the generation pipeline relies on: it assumes
// every mandatory sub-object is present and does not re-validate.
func (p *CompanyProfile) Validate() error {
	if err := profileValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid company profile: %w", err)
	}
	return nil
}

// ServesEUOrUK reports whether any served jurisdiction falls under EU/UK/EEA rules
func (p *CompanyProfile) ServesEUOrUK() bool {
	for _, j := range p.Organization.JurisdictionsServed {
		if j == JurisdictionEU || j == JurisdictionUK || j == "EEA" {
			return true
		}
	}
	return false
}

// ServesUSOrCA reports whether the US or Canada is a served jurisdiction
func (p *CompanyProfile) ServesUSOrCA() bool {
	for _, j := range p.Organization.JurisdictionsServed {
		if j == JurisdictionUS || j == JurisdictionCA {
			return true
		}
	}
	return false
}
