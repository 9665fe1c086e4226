// Package synth builds retrieval-augmented generation requests for document
// sections and invokes the external generation capability.
package synth

import (
	"context"
	"strings"

	"github.com/mfeldman/termsmith/internal/llm"
	"github.com/mfeldman/termsmith/internal/registry"
	"github.com/mfeldman/termsmith/internal/types"
)

// Passage is one retrieved reference passage
type Passage struct {
	Content   string  `json:"content"`
	SourceURL string  `json:"source_url,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

// Retriever is the external retrieval capability. The synthesizer treats it
// as a black box and does not manage index construction.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]Passage, error)
}

// Generator is the external text-generation capability. llm.Client satisfies
// this interface; tests substitute deterministic fakes.
type Generator interface {
	Complete(ctx context.Context, prompt string, params llm.SamplingParams) (string, error)
}

// Request carries the per-run inputs for section synthesis
type Request struct {
	ProductVars       types.ProductVars
	Tone              types.Tone
	JurisdictionNames []string
}

// Synthesizer produces raw section text by combining retrieved reference
// context with a strategy-built prompt. Cleanup is a separate stage.
type Synthesizer struct {
	retriever Retriever
	generator Generator
	strategy  Strategy
	sampling  llm.SamplingParams
}

// New creates a synthesizer over injected retrieval and generation handles
func New(retriever Retriever, generator Generator, strategy Strategy) *Synthesizer {
	return &Synthesizer{
		retriever: retriever,
		generator: generator,
		strategy:  strategy,
		sampling:  llm.DefaultSampling(),
	}
}

// NewSectionSynthesizer creates a synthesizer using the registry-driven
// generic per-section strategy
func NewSectionSynthesizer(retriever Retriever, generator Generator, reg *registry.Registry) *Synthesizer {
	return New(retriever, generator, &SectionStrategy{Registry: reg})
}

// Synthesize produces the raw generated text for one section. Any failure in
// retrieval, prompt construction, or generation is fatal to the section and
// propagates up; there is no partial fallback at this layer.
func (s *Synthesizer) Synthesize(ctx context.Context, section string, docType types.DocType, req Request) (string, error) {
	query := s.strategy.Query(section, docType)

	passages, err := s.retriever.Search(ctx, query, s.strategy.TopK())
	if err != nil {
		return "", &RetrievalError{Query: query, Cause: err}
	}

	prompt, err := s.strategy.Prompt(section, docType, req, joinPassages(passages))
	if err != nil {
		return "", err
	}

	raw, err := s.generator.Complete(ctx, prompt, s.sampling)
	if err != nil {
		return "", &GenerationError{Section: section, Cause: err}
	}

	return raw, nil
}

// joinPassages concatenates passage text into the prompt context block
func joinPassages(passages []Passage) string {
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		parts = append(parts, p.Content)
	}
	return strings.Join(parts, "\n\n")
}
