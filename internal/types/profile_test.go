package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestProfile() *CompanyProfile {
	return &CompanyProfile{
		ProfileName: "Acme SaaS",
		Organization: OrganizationInfo{
			CompanyLegalName:    "Acme Corp",
			RegisteredAddress:   "1 Main St, Dover, DE",
			PrivacyEmail:        "privacy@acme.com",
			LegalNoticesEmail:   "legal@acme.com",
			JurisdictionsServed: []Jurisdiction{JurisdictionUS},
			EffectiveDate:       "2026-01-01",
		},
		Product:  ProductInfo{ProductName: "Acme App"},
		Audience: AudienceEligibility{MinimumAge: 13},
		AcceptableUse: AcceptableUsePolicy{
			ProhibitedActs: []string{"illegal activity"},
		},
		IntellectualProperty: IntellectualProperty{ServiceIPRetainedByCompany: true},
		Changes:              ChangesPolicy{ChangeNoticeMethod: []string{"email"}},
		Disclaimers:          Disclaimers{LiabilityCapDescription: "12 months of fees"},
		DisputeResolution:    DisputeResolution{DisputePath: "courts", Venue: "Delaware"},
	}
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, validTestProfile().Validate())
}

func TestProfileValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CompanyProfile)
	}{
		{"missing profile name", func(p *CompanyProfile) { p.ProfileName = "" }},
		{"missing company name", func(p *CompanyProfile) { p.Organization.CompanyLegalName = "" }},
		{"invalid privacy email", func(p *CompanyProfile) { p.Organization.PrivacyEmail = "nope" }},
		{"invalid effective date", func(p *CompanyProfile) { p.Organization.EffectiveDate = "01/01/2026" }},
		{"no jurisdictions", func(p *CompanyProfile) { p.Organization.JurisdictionsServed = nil }},
		{"missing product name", func(p *CompanyProfile) { p.Product.ProductName = "" }},
		{"invalid minimum age", func(p *CompanyProfile) { p.Audience.MinimumAge = 15 }},
		{"no prohibited acts", func(p *CompanyProfile) { p.AcceptableUse.ProhibitedActs = nil }},
		{"no change notice method", func(p *CompanyProfile) { p.Changes.ChangeNoticeMethod = nil }},
		{"missing liability cap", func(p *CompanyProfile) { p.Disclaimers.LiabilityCapDescription = "" }},
		{"invalid dispute path", func(p *CompanyProfile) { p.DisputeResolution.DisputePath = "duel" }},
		{"missing venue", func(p *CompanyProfile) { p.DisputeResolution.Venue = "" }},
		{
			"invalid data category source",
			func(p *CompanyProfile) {
				p.DataCategories = []DataCategory{{Category: "logs", Source: "scraped", Purposes: []string{"debugging"}}}
			},
		},
		{
			"invalid monetization model",
			func(p *CompanyProfile) { p.Billing = &BillingInfo{MonetizationModel: "barter"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validTestProfile()
			tt.mutate(profile)
			assert.Error(t, profile.Validate())
		})
	}
}

func TestServesEUOrUK(t *testing.T) {
	tests := []struct {
		name          string
		jurisdictions []Jurisdiction
		expected      bool
	}{
		{"EU", []Jurisdiction{JurisdictionEU}, true},
		{"UK", []Jurisdiction{JurisdictionUK}, true},
		{"EEA literal", []Jurisdiction{"EEA"}, true},
		{"US only", []Jurisdiction{JurisdictionUS}, false},
		{"mixed", []Jurisdiction{JurisdictionUS, JurisdictionEU}, true},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &CompanyProfile{Organization: OrganizationInfo{JurisdictionsServed: tt.jurisdictions}}
			assert.Equal(t, tt.expected, p.ServesEUOrUK())
		})
	}
}

func TestServesUSOrCA(t *testing.T) {
	tests := []struct {
		name          string
		jurisdictions []Jurisdiction
		expected      bool
	}{
		{"US", []Jurisdiction{JurisdictionUS}, true},
		{"CA", []Jurisdiction{JurisdictionCA}, true},
		{"EU only", []Jurisdiction{JurisdictionEU}, false},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &CompanyProfile{Organization: OrganizationInfo{JurisdictionsServed: tt.jurisdictions}}
			assert.Equal(t, tt.expected, p.ServesUSOrCA())
		})
	}
}
