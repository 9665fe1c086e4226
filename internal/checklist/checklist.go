// Package checklist scans assembled documents for required content and
// residual scaffolding, emitting advisory severity-tagged gaps. The
// validator never fails: empty or incomplete input yields more gaps, not an
// error.
package checklist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mfeldman/termsmith/internal/assemble"
	"github.com/mfeldman/termsmith/internal/types"
)

// criticalSection pairs a required keyword with its human description
type criticalSection struct {
	keyword     string
	description string
}

// tosCriticalSections is the required-keyword checklist for Terms of
// Service. It is maintained independently of the planner's section-key list
// and intentionally diverges from it (the planner emits "accounts" and
// "user content", which are not checked here, and checks "limitation of
// liability" rather than the planner key "liability").
var tosCriticalSections = []criticalSection{
	{"eligibility", "age requirements and authority"},
	{"intellectual property", "IP ownership and licensing"},
	{"limitation of liability", "liability limitations and disclaimers"},
	{"governing law", "jurisdiction and applicable law"},
	{"third-party services", "third-party provider disclaimers"},
	{"changes to terms", "how terms may be modified"},
	{"general provisions", "severability, assignment, etc."},
	{"contact", "company contact information"},
}

// privacyCriticalSections is the required-keyword checklist for Privacy
// Policies
var privacyCriticalSections = []criticalSection{
	{"data we collect", "types of data collected"},
	{"how we use data", "purposes and legal bases"},
	{"your rights", "access, deletion, portability, etc."},
	{"children", "under-13 policy and COPPA compliance"},
	{"third-party services", "processors and their policies"},
	{"data retention", "how long data is kept"},
	{"security", "security measures"},
	{"cookies and tracking", "cookie usage and opt-out"},
	{"changes to policy", "how policy changes are communicated"},
	{"contact", "data controller contact information"},
}

var scaffoldingRe = regexp.MustCompile("```|NEEDS REVIEW")

// Validate runs the checklist for a document type over the assembled text
func Validate(docType types.DocType, document string) []types.Gap {
	switch docType {
	case types.DocTypePrivacy:
		return ValidatePrivacy(document)
	default:
		return ValidateToS(document)
	}
}

// ValidateToS checks Terms of Service completeness against critical legal
// requirements
func ValidateToS(document string) []types.Gap {
	var gaps []types.Gap
	low := strings.ToLower(document)

	gaps = append(gaps, missingSections(low, tosCriticalSections)...)

	if scaffoldingRe.MatchString(document) {
		gaps = append(gaps, types.ErrorGap("Contains scaffolding (code fences or NEEDS REVIEW markers)"))
	}

	if !strings.Contains(low, "non-excludable rights") && !strings.Contains(low, "statutory rights") {
		gaps = append(gaps, types.WarnGap("No carve-out for non-excludable consumer rights"))
	}

	return gaps
}

// ValidatePrivacy checks Privacy Policy completeness against GDPR, CCPA, and
// COPPA requirements
func ValidatePrivacy(document string) []types.Gap {
	var gaps []types.Gap
	low := strings.ToLower(document)

	gaps = append(gaps, missingSections(low, privacyCriticalSections)...)

	if !strings.Contains(low, "effective date") {
		gaps = append(gaps, types.ErrorGap("Missing: Effective Date"))
	}

	if scaffoldingRe.MatchString(document) {
		gaps = append(gaps, types.ErrorGap("Contains scaffolding (code fences or NEEDS REVIEW markers)"))
	}

	return gaps
}

// missingSections emits one gap per required keyword absent from the
// lowercased document text
func missingSections(low string, sections []criticalSection) []types.Gap {
	var gaps []types.Gap
	for _, section := range sections {
		if !strings.Contains(low, section.keyword) {
			gaps = append(gaps, types.ErrorGap(fmt.Sprintf("Missing: %s (%s)", assemble.Title(section.keyword), section.description)))
		}
	}
	return gaps
}
