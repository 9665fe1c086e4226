// Package assemble orders cleaned sections under a title and effective-date
// header into one markdown document.
package assemble

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mfeldman/termsmith/internal/sanitize"
	"github.com/mfeldman/termsmith/internal/types"
)

// Section is one cleaned section body keyed by its planner section key
type Section struct {
	Key  string
	Body string
}

// Document builds the full document text: a level-1 title, a bolded
// effective-date line, then a level-2 heading and body per section in
// planner order. The sanitizer runs twice over the joined text to cover
// artifacts introduced at the join boundaries; it is idempotent, so the
// second pass is provably harmless.
func Document(docType types.DocType, sections []Section, effectiveDate string) string {
	parts := make([]string, 0, len(sections)+1)
	parts = append(parts, fmt.Sprintf("# %s\n\n**Effective Date:** %s\n", docType.Title(), effectiveDate))

	for _, section := range sections {
		parts = append(parts, fmt.Sprintf("## %s\n\n%s\n", Title(section.Key), section.Body))
	}

	doc := strings.Join(parts, "\n")
	doc = sanitize.Clean(doc)
	doc = sanitize.Clean(doc)
	return doc
}

// Title converts a section key to its display title: the first letter of
// every word is upper-cased, where a word starts after any non-letter
// ("third-party services" becomes "Third-Party Services").
func Title(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	prevLetter := false
	for _, r := range key {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
