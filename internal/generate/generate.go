// Package generate orchestrates the document pipeline: planning, section
// synthesis, cleanup, and assembly. Sections are generated strictly one
// after another; a failure midway aborts the whole call and no partial
// document is returned.
package generate

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/mfeldman/termsmith/internal/assemble"
	"github.com/mfeldman/termsmith/internal/planner"
	"github.com/mfeldman/termsmith/internal/registry"
	"github.com/mfeldman/termsmith/internal/sanitize"
	"github.com/mfeldman/termsmith/internal/synth"
	"github.com/mfeldman/termsmith/internal/types"
)

// Documents maps a document type to its generated markdown
type Documents map[types.DocType]string

// Pipeline wires the planner, synthesizer, sanitizer, and assembler over
// injected retrieval and generation capabilities
type Pipeline struct {
	retriever synth.Retriever
	generator synth.Generator
	registry  *registry.Registry
	verbose   bool
}

// New creates a pipeline over the given capability handles and registry
func New(retriever synth.Retriever, generator synth.Generator, reg *registry.Registry) *Pipeline {
	return &Pipeline{
		retriever: retriever,
		generator: generator,
		registry:  reg,
	}
}

// WithProgressLogging enables per-section progress lines on the standard logger
func (p *Pipeline) WithProgressLogging() *Pipeline {
	p.verbose = true
	return p
}

// AdHoc generates documents from a flat product-variables record (Caller A).
// It always uses the fixed canonical section lists and today's date as the
// effective date.
func (p *Pipeline) AdHoc(ctx context.Context, req types.GenerateRequest) (Documents, error) {
	tone := req.Tone
	if tone == "" {
		tone = types.TonePlain
	}

	run := synth.Request{
		ProductVars:       req.ProductVars,
		Tone:              tone,
		JurisdictionNames: types.JurisdictionDisplayNames(req.Jurisdictions),
	}
	effectiveDate := time.Now().Format("2006-01-02")

	out := make(Documents)
	for _, docType := range req.Docs {
		doc, err := p.generateDocument(ctx, docType, planner.FixedSections(docType), run, effectiveDate)
		if err != nil {
			return nil, err
		}
		out[docType] = doc
	}
	return out, nil
}

// FromProfile generates documents from a company profile (Caller B). The
// conditional planner decides the section list and the profile's stored
// effective date heads each document.
func (p *Pipeline) FromProfile(ctx context.Context, profile *types.CompanyProfile, docs []types.DocType, tone types.Tone) (Documents, error) {
	if tone == "" {
		tone = types.TonePlain
	}

	run := synth.Request{
		ProductVars:       ProfileProductVars(profile),
		Tone:              tone,
		JurisdictionNames: types.JurisdictionDisplayNames(profile.Organization.JurisdictionsServed),
	}

	out := make(Documents)
	for _, docType := range docs {
		doc, err := p.generateDocument(ctx, docType, planner.Plan(docType, profile), run, profile.Organization.EffectiveDate)
		if err != nil {
			return nil, err
		}
		out[docType] = doc
	}
	return out, nil
}

// PrivacyPolicy generates a privacy policy in one pass through the
// specialized whole-document prompt strategy
func (p *Pipeline) PrivacyPolicy(ctx context.Context, profile *types.CompanyProfile) (string, error) {
	strategy := &synth.PrivacyPolicyStrategy{Profile: profile}
	synthesizer := synth.New(p.retriever, p.generator, strategy)

	run := synth.Request{
		ProductVars:       ProfileProductVars(profile),
		Tone:              types.TonePlain,
		JurisdictionNames: types.JurisdictionDisplayNames(profile.Organization.JurisdictionsServed),
	}

	raw, err := synthesizer.Synthesize(ctx, "", types.DocTypePrivacy, run)
	if err != nil {
		return "", err
	}

	return sanitize.Clean(raw), nil
}

// generateDocument runs the sequential per-section loop for one document.
// Each section is synthesized, cleaned, stripped of any echoed heading, and
// appended in planner order.
func (p *Pipeline) generateDocument(ctx context.Context, docType types.DocType, sections []string, run synth.Request, effectiveDate string) (string, error) {
	synthesizer := synth.NewSectionSynthesizer(p.retriever, p.generator, p.registry)

	assembled := make([]assemble.Section, 0, len(sections))
	for i, section := range sections {
		if p.verbose {
			log.Printf("  [%d/%d] %s", i+1, len(sections), assemble.Title(section))
		}

		raw, err := synthesizer.Synthesize(ctx, section, docType, run)
		if err != nil {
			return "", err
		}

		body := sanitize.Clean(raw)
		body = sanitize.StripLeadingHeading(body)
		assembled = append(assembled, assemble.Section{Key: section, Body: body})
	}

	return assemble.Document(docType, assembled, effectiveDate), nil
}

// ProfileProductVars derives the flat product-variables record from a
// profile. Vendors whose use mentions payment become listed processors;
// organization and product fields map one to one.
func ProfileProductVars(profile *types.CompanyProfile) types.ProductVars {
	var processors []string
	for _, vendor := range profile.Vendors {
		if vendor.Use != "" && containsFold(vendor.Use, "payment") {
			processors = append(processors, vendor.Name)
		}
	}

	serviceType := profile.Product.ServiceType
	if serviceType == "" {
		serviceType = "SaaS platform"
	}

	return types.ProductVars{
		ProductName:  profile.Product.ProductName,
		CompanyLegal: profile.Organization.CompanyLegalName,
		ContactEmail: profile.Organization.PrivacyEmail,
		LegalEmail:   profile.Organization.LegalNoticesEmail,
		Address:      profile.Organization.RegisteredAddress,
		Processors:   processors,
		Platforms:    profile.Product.Platforms,
		ServiceType:  serviceType,
	}
}

// containsFold reports whether s contains substr, case-insensitively
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
