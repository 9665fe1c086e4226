package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfeldman/termsmith/internal/types"
)

func gapsProfile(jurisdictions ...types.Jurisdiction) *types.CompanyProfile {
	return &types.CompanyProfile{
		ProfileName: "Acme",
		Organization: types.OrganizationInfo{
			JurisdictionsServed: jurisdictions,
		},
	}
}

func TestProfileGapsGDPR(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.CompanyProfile)
		expected string
	}{
		{
			"missing legal bases entirely",
			func(p *types.CompanyProfile) {},
			"GDPR compliance information missing for EU/UK jurisdictions",
		},
		{
			"legal bases without lawful bases",
			func(p *types.CompanyProfile) { p.LegalBases = &types.LegalBases{} },
			"Legal bases not specified for GDPR compliance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := gapsProfile(types.JurisdictionEU)
			tt.mutate(profile)
			assert.Contains(t, gapMessages(ProfileGaps(profile)), tt.expected)
		})
	}
}

func TestProfileGapsGDPRSatisfied(t *testing.T) {
	profile := gapsProfile(types.JurisdictionUK)
	profile.LegalBases = &types.LegalBases{
		LawfulBasesPerPurpose: map[string]string{"analytics": "legitimate interests"},
	}
	assert.Empty(t, ProfileGaps(profile))
}

func TestProfileGapsUSStatePrivacy(t *testing.T) {
	profile := gapsProfile(types.JurisdictionCA)
	assert.Contains(t, gapMessages(ProfileGaps(profile)), "US state privacy information missing for US/CA jurisdictions")

	profile.USStatePrivacy = &types.USStatePrivacy{}
	assert.NotContains(t, gapMessages(ProfileGaps(profile)), "US state privacy information missing for US/CA jurisdictions")
}

func TestProfileGapsRetention(t *testing.T) {
	profile := gapsProfile(types.JurisdictionUS)
	profile.USStatePrivacy = &types.USStatePrivacy{}
	profile.DataCategories = []types.DataCategory{
		{Category: "account data", Retention: "2 years"},
		{Category: "usage logs"},
	}

	gaps := ProfileGaps(profile)
	msgs := gapMessages(gaps)
	assert.Contains(t, msgs, "Retention period not specified for data category: usage logs")
	assert.NotContains(t, msgs, "Retention period not specified for data category: account data")
	for _, gap := range gaps {
		assert.Equal(t, types.SeverityWarn, gap.Severity)
	}
}

func TestProfileGapsRetentionSkippedOutsideCoveredJurisdictions(t *testing.T) {
	profile := gapsProfile(types.JurisdictionAU)
	profile.DataCategories = []types.DataCategory{{Category: "usage logs"}}
	assert.Empty(t, ProfileGaps(profile))
}

func TestProfileGapsBetaNote(t *testing.T) {
	profile := gapsProfile(types.JurisdictionAU)
	profile.Product.HasBetaFeatures = true
	assert.Contains(t, gapMessages(ProfileGaps(profile)), "Beta features note is required when beta features are enabled")

	profile.Product.BetaNote = "Beta features are provided as-is."
	assert.Empty(t, ProfileGaps(profile))
}

func TestProfileGapsUGCLicense(t *testing.T) {
	profile := gapsProfile(types.JurisdictionAU)
	profile.AcceptableUse.UGCEnabled = true
	assert.Contains(t, gapMessages(ProfileGaps(profile)), "UGC license description is required when user-generated content is enabled")

	profile.AcceptableUse.UGCLicenseToService = "Users grant the service a worldwide license."
	assert.Empty(t, ProfileGaps(profile))
}

func TestProfileGapsCleanProfile(t *testing.T) {
	assert.Empty(t, ProfileGaps(gapsProfile(types.JurisdictionAU)))
}
