// Package checklist scans assembled documents for required content and
// residual scaffolding, emitting advisory severity-tagged gaps.
package checklist

import (
	"fmt"

	"github.com/mfeldman/termsmith/internal/types"
)

// ProfileGaps runs the jurisdiction-conditioned and field-conditioned checks
// over a company profile. These gaps use the same advisory type as the
// document checklist and are a sidecar to generation, never a blocker.
func ProfileGaps(profile *types.CompanyProfile) []types.Gap {
	var gaps []types.Gap

	if profile.ServesEUOrUK() {
		switch {
		case profile.LegalBases == nil:
			gaps = append(gaps, types.ErrorGap("GDPR compliance information missing for EU/UK jurisdictions"))
		case len(profile.LegalBases.LawfulBasesPerPurpose) == 0:
			gaps = append(gaps, types.ErrorGap("Legal bases not specified for GDPR compliance"))
		}
	}

	if profile.ServesUSOrCA() && profile.USStatePrivacy == nil {
		gaps = append(gaps, types.ErrorGap("US state privacy information missing for US/CA jurisdictions"))
	}

	if profile.ServesEUOrUK() || servesUS(profile) {
		for _, item := range profile.DataCategories {
			if item.Retention == "" {
				gaps = append(gaps, types.WarnGap(fmt.Sprintf("Retention period not specified for data category: %s", item.Category)))
			}
		}
	}

	if profile.Product.HasBetaFeatures && profile.Product.BetaNote == "" {
		gaps = append(gaps, types.ErrorGap("Beta features note is required when beta features are enabled"))
	}

	if profile.AcceptableUse.UGCEnabled && profile.AcceptableUse.UGCLicenseToService == "" {
		gaps = append(gaps, types.ErrorGap("UGC license description is required when user-generated content is enabled"))
	}

	return gaps
}

// servesUS reports whether the US specifically is served (the retention
// check applies to EU, UK, and US only)
func servesUS(profile *types.CompanyProfile) bool {
	for _, j := range profile.Organization.JurisdictionsServed {
		if j == types.JurisdictionUS {
			return true
		}
	}
	return false
}
