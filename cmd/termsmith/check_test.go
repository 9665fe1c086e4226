package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func completeToSDoc() string {
	var b strings.Builder
	b.WriteString("# Terms of Service\n\n**Effective Date:** 2026-01-01\n")
	for _, h := range []string{
		"Eligibility", "Intellectual Property", "Limitation Of Liability",
		"Governing Law", "Third-Party Services", "Changes To Terms",
		"General Provisions", "Contact",
	} {
		b.WriteString("\n## " + h + "\n\nBody.\n")
	}
	b.WriteString("\nNothing here limits your statutory rights.\n")
	return b.String()
}

func TestRunCheckCleanDocument(t *testing.T) {
	checkDocType = "tos"
	err := runCheck(nil, []string{writeDoc(t, completeToSDoc())})
	assert.NoError(t, err)
}

func TestRunCheckIncompleteDocument(t *testing.T) {
	checkDocType = "tos"
	err := runCheck(nil, []string{writeDoc(t, "# Terms of Service\n\nAlmost empty.\n")})
	assert.ErrorContains(t, err, "gap(s) found")
}

func TestRunCheckMissingFile(t *testing.T) {
	checkDocType = "tos"
	err := runCheck(nil, []string{filepath.Join(t.TempDir(), "absent.md")})
	assert.ErrorContains(t, err, "failed to read document")
}

func TestRunCheckUnknownType(t *testing.T) {
	checkDocType = "contract"
	defer func() { checkDocType = "tos" }()
	err := runCheck(nil, []string{writeDoc(t, "anything")})
	assert.ErrorContains(t, err, "unknown document type")
}
