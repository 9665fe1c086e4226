package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfeldman/termsmith/internal/types"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "tos:acceptance", Key(types.DocTypeToS, "acceptance"))
	assert.Equal(t, "privacy:scope", Key(types.DocTypePrivacy, "scope"))
}

func TestLookupKnownSection(t *testing.T) {
	reg := Default()

	musts := reg.Lookup(types.DocTypeToS, "acceptance")
	assert.NotEmpty(t, musts)
	assert.Contains(t, musts, "State this is a binding agreement")
}

func TestLookupUnknownSection(t *testing.T) {
	reg := Default()

	tests := []struct {
		name    string
		docType types.DocType
		section string
	}{
		{"unknown section", types.DocTypeToS, "no such section"},
		{"wrong doc type", types.DocTypePrivacy, "acceptance"},
		{"empty section", types.DocTypeToS, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, reg.Lookup(tt.docType, tt.section))
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	reg := Default()

	first := reg.Lookup(types.DocTypeToS, "acceptance")
	first[0] = "mutated"

	second := reg.Lookup(types.DocTypeToS, "acceptance")
	assert.NotEqual(t, "mutated", second[0])
}

func TestDefaultCoversAllPlannedSections(t *testing.T) {
	reg := Default()

	tosSections := []string{
		"acceptance", "eligibility", "accounts", "user content",
		"intellectual property", "acceptable use", "subscriptions & billing",
		"third-party services", "changes to terms", "liability",
		"governing law", "termination", "general provisions", "contact",
	}
	for _, section := range tosSections {
		assert.NotEmpty(t, reg.Lookup(types.DocTypeToS, section), "tos section %q must have musts", section)
	}

	privacySections := []string{
		"scope", "data we collect", "how we use data", "sharing and disclosure",
		"third-party services", "international transfers", "data retention",
		"security", "your rights", "children", "cookies and tracking",
		"changes to policy", "contact",
	}
	for _, section := range privacySections {
		assert.NotEmpty(t, reg.Lookup(types.DocTypePrivacy, section), "privacy section %q must have musts", section)
	}
}

func TestNewWithCustomTable(t *testing.T) {
	reg := New(map[string][]string{
		"tos:custom": {"only directive"},
	})

	assert.Equal(t, []string{"only directive"}, reg.Lookup(types.DocTypeToS, "custom"))
	assert.Empty(t, reg.Lookup(types.DocTypeToS, "acceptance"))
}
