package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTypeTitle(t *testing.T) {
	assert.Equal(t, "Terms of Service", DocTypeToS.Title())
	assert.Equal(t, "Privacy Policy", DocTypePrivacy.Title())
}

func TestDocTypePromptLabel(t *testing.T) {
	assert.Equal(t, "ToS", DocTypeToS.PromptLabel())
	assert.Equal(t, "Privacy", DocTypePrivacy.PromptLabel())
}

func TestTonePromptLabel(t *testing.T) {
	assert.Equal(t, "plain english", TonePlain.PromptLabel())
	assert.Equal(t, "formal", ToneFormal.PromptLabel())
}

func TestJurisdictionDisplayName(t *testing.T) {
	tests := []struct {
		code     Jurisdiction
		expected string
	}{
		{JurisdictionUS, "United States"},
		{JurisdictionEU, "European Union"},
		{JurisdictionUK, "United Kingdom"},
		{JurisdictionCA, "Canada"},
		{JurisdictionAU, "Australia"},
		{JurisdictionIL, "Israel"},
		{JurisdictionOther, "Other"},
		{Jurisdiction("BR"), "BR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.DisplayName())
		})
	}
}

func TestJurisdictionDisplayNames(t *testing.T) {
	names := JurisdictionDisplayNames([]Jurisdiction{JurisdictionEU, JurisdictionUS})
	assert.Equal(t, []string{"European Union", "United States"}, names)
	assert.Empty(t, JurisdictionDisplayNames(nil))
}

func TestSupportedJurisdictionsIsACopy(t *testing.T) {
	m := SupportedJurisdictions()
	m[JurisdictionUS] = "mutated"
	assert.Equal(t, "United States", JurisdictionUS.DisplayName())
}
