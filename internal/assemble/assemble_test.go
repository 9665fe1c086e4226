package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfeldman/termsmith/internal/types"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"single word", "acceptance", "Acceptance"},
		{"two words", "governing law", "Governing Law"},
		{"hyphenated", "third-party services", "Third-Party Services"},
		{"ampersand", "subscriptions & billing", "Subscriptions & Billing"},
		{"preposition capitalized", "limitation of liability", "Limitation Of Liability"},
		{"already capitalized", "Contact", "Contact"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.key))
		})
	}
}

func TestDocumentShape(t *testing.T) {
	sections := []Section{
		{Key: "acceptance", Body: "You agree to these terms."},
		{Key: "governing law", Body: "These terms are governed by Delaware law."},
	}

	doc := Document(types.DocTypeToS, sections, "2026-01-01")

	assert.True(t, strings.HasPrefix(doc, "# Terms of Service"))
	assert.Contains(t, doc, "**Effective Date:** 2026-01-01")
	assert.Contains(t, doc, "## Acceptance\n\nYou agree to these terms.")
	assert.Contains(t, doc, "## Governing Law\n\nThese terms are governed by Delaware law.")
	assert.Less(t, strings.Index(doc, "## Acceptance"), strings.Index(doc, "## Governing Law"))
}

func TestDocumentPrivacyTitle(t *testing.T) {
	doc := Document(types.DocTypePrivacy, []Section{{Key: "scope", Body: "This policy covers the service."}}, "2026-01-01")
	assert.True(t, strings.HasPrefix(doc, "# Privacy Policy"))
}

func TestDocumentPreservesSectionOrder(t *testing.T) {
	keys := []string{"scope", "data we collect", "security", "contact"}
	sections := make([]Section, 0, len(keys))
	for _, key := range keys {
		sections = append(sections, Section{Key: key, Body: "Body for " + key + "."})
	}

	doc := Document(types.DocTypePrivacy, sections, "2026-01-01")

	last := -1
	for _, key := range keys {
		idx := strings.Index(doc, "## "+Title(key))
		assert.Greater(t, idx, last, "section %q out of order", key)
		last = idx
	}
}

func TestDocumentCleansJoinArtifacts(t *testing.T) {
	sections := []Section{
		{Key: "acceptance", Body: "Body.\n\n\n"},
		{Key: "contact", Body: "Reach us at legal@acme.com."},
	}

	doc := Document(types.DocTypeToS, sections, "2026-01-01")

	assert.NotContains(t, doc, "\n\n\n")
	assert.False(t, strings.HasSuffix(doc, "\n"))
}

func TestDocumentKeepsAllHeadingsThroughDoubleClean(t *testing.T) {
	keys := []string{
		"acceptance", "eligibility", "accounts", "user content",
		"intellectual property", "acceptable use", "subscriptions & billing",
		"third-party services", "changes to terms", "liability",
		"governing law", "termination", "general provisions", "contact",
	}
	sections := make([]Section, 0, len(keys))
	for _, key := range keys {
		sections = append(sections, Section{Key: key, Body: "Body."})
	}

	doc := Document(types.DocTypeToS, sections, "2026-01-01")

	assert.Equal(t, len(keys), strings.Count(doc, "\n## "), "every section heading must survive assembly")
}
