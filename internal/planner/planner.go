// Package planner computes the ordered list of sections to generate for a
// document, applying conditional-inclusion rules over a company profile.
package planner

import "github.com/mfeldman/termsmith/internal/types"

// ToSSections is the canonical ordered section universe for Terms of Service
var ToSSections = []string{
	"acceptance",
	"eligibility",
	"accounts",
	"user content",
	"intellectual property",
	"acceptable use",
	"subscriptions & billing",
	"third-party services",
	"changes to terms",
	"liability",
	"governing law",
	"termination",
	"general provisions",
	"contact",
}

// PrivacySections is the canonical ordered section universe for Privacy Policies
var PrivacySections = []string{
	"scope",
	"data we collect",
	"how we use data",
	"sharing and disclosure",
	"third-party services",
	"international transfers",
	"data retention",
	"security",
	"your rights",
	"children",
	"cookies and tracking",
	"changes to policy",
	"contact",
}

// paidModels are the monetization models that require a billing section
var paidModels = map[string]bool{
	"paid":        true,
	"freemium":    true,
	"usage-based": true,
}

// FixedSections returns the full canonical section list for a document type.
// Ad-hoc generation always uses the fixed lists with no conditionals.
func FixedSections(docType types.DocType) []string {
	var base []string
	switch docType {
	case types.DocTypeToS:
		base = ToSSections
	case types.DocTypePrivacy:
		base = PrivacySections
	default:
		return nil
	}
	out := make([]string, len(base))
	copy(out, base)
	return out
}

// Plan returns the profile-conditioned section list for a document type.
// Order is deterministic for identical input and becomes document order.
func Plan(docType types.DocType, profile *types.CompanyProfile) []string {
	switch docType {
	case types.DocTypeToS:
		return PlanToS(profile)
	case types.DocTypePrivacy:
		return PlanPrivacy(profile)
	default:
		return nil
	}
}

// PlanToS computes the Terms of Service section list for a profile.
// Sections tied to optional business facts (UGC, billing, vendors) are only
// emitted when the underlying fact is true, keeping the document
// proportionate to the actual product.
func PlanToS(profile *types.CompanyProfile) []string {
	sections := []string{
		"acceptance",
		"eligibility",
		"accounts",
	}

	if profile.AcceptableUse.UGCEnabled {
		sections = append(sections, "user content")
	}

	sections = append(sections,
		"intellectual property",
		"acceptable use",
	)

	if profile.Billing != nil && paidModels[profile.Billing.MonetizationModel] {
		sections = append(sections, "subscriptions & billing")
	}

	if len(profile.Vendors) > 0 {
		sections = append(sections, "third-party services")
	}

	sections = append(sections,
		"changes to terms",
		"liability",
		"governing law",
		"termination",
		"general provisions",
		"contact",
	)

	return sections
}

// PlanPrivacy computes the Privacy Policy section list for a profile
func PlanPrivacy(profile *types.CompanyProfile) []string {
	sections := []string{
		"scope",
		"data we collect",
		"how we use data",
		"sharing and disclosure",
	}

	if len(profile.Vendors) > 0 {
		sections = append(sections, "third-party services")
	}

	if profile.ServesEUOrUK() || profile.InternationalTransfers != nil {
		sections = append(sections, "international transfers")
	}

	sections = append(sections,
		"data retention",
		"security",
	)

	if profile.ServesEUOrUK() || hasRequestChannel(profile.USStatePrivacy) {
		sections = append(sections, "your rights")
	}

	sections = append(sections, "children")

	if profile.Tracking != nil {
		sections = append(sections, "cookies and tracking")
	}

	sections = append(sections,
		"changes to policy",
		"contact",
	)

	return sections
}

// hasRequestChannel reports whether the US-state descriptor lists at least
// one non-empty rights-request channel
func hasRequestChannel(usp *types.USStatePrivacy) bool {
	if usp == nil {
		return false
	}
	for _, channel := range usp.RequestChannels {
		if channel != "" {
			return true
		}
	}
	return false
}
