// Package sanitize strips generation scaffolding (code fences, review
// markers, echoed headings) from synthesized legal text.
package sanitize

import "regexp"

var (
	fenceRe           = regexp.MustCompile("```[a-zA-Z]*\n?")
	reviewMarkerRe    = regexp.MustCompile(`(?im)^.*NEEDS?[ \t]*REVIEW.*$`)
	todoRe            = regexp.MustCompile(`(?im)^.*TODO.*$`)
	fixmeRe           = regexp.MustCompile(`(?im)^.*FIXME.*$`)
	leadingH2Re       = regexp.MustCompile(`\A(?:\s*##[ \t][^\n]*\n?)+`)
	leadingHeadingRe  = regexp.MustCompile(`\A\s*#{1,6}[ \t][^\n]*\n?`)
	blankRunRe        = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
	leadingSpaceRe    = regexp.MustCompile(`\A\s+`)
	trailingSpaceRe   = regexp.MustCompile(`\s+\z`)
)

// Clean removes generation scaffolding from text. Transformations run in a
// fixed order: fenced code delimiters, review-marker lines (NEEDS REVIEW,
// TODO, FIXME), an echoed section heading at the top of the text, blank-line
// runs, and surrounding whitespace.
//
// Clean is idempotent: the assembler deliberately runs it twice over the
// joined document, and the second pass must be a no-op. The heading strip is
// anchored to the start of the text, matches level-2 headings only, and
// consumes the entire run of consecutive echoed headings in one pass, so
// removal never exposes another strippable heading and repeated
// document-level passes never consume the assembler's own title or section
// headings.
func Clean(text string) string {
	text = fenceRe.ReplaceAllString(text, "")
	text = reviewMarkerRe.ReplaceAllString(text, "")
	text = todoRe.ReplaceAllString(text, "")
	text = fixmeRe.ReplaceAllString(text, "")
	text = leadingH2Re.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = leadingSpaceRe.ReplaceAllString(text, "")
	text = trailingSpaceRe.ReplaceAllString(text, "")
	return text
}

// StripLeadingHeading removes a single heading line at the very start of a
// section body. The assembler emits its own per-section heading, so an
// echoed title would otherwise appear twice.
func StripLeadingHeading(text string) string {
	return leadingHeadingRe.ReplaceAllString(text, "")
}
