package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/checklist"
	"github.com/mfeldman/termsmith/internal/generate"
	"github.com/mfeldman/termsmith/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft documents from ad-hoc product variables",
	Long: `Drafts Terms of Service and/or Privacy Policy documents from a product
variables JSON file, one retrieval-grounded LLM call per section, and runs
the compliance checklist on the result.`,
	RunE: runGenerate,
}

var (
	genConfigPath    string
	genVarsPath      string
	genDocs          []string
	genTone          string
	genJurisdictions []string
	genOutDir        string
	genVerbose       bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file")
	generateCmd.Flags().StringVar(&genVarsPath, "vars", "", "Path to product variables JSON file (required)")
	generateCmd.Flags().StringSliceVar(&genDocs, "docs", []string{"tos", "privacy"}, "Document types to draft (tos, privacy)")
	generateCmd.Flags().StringVar(&genTone, "tone", "plain", "Drafting tone (plain, formal)")
	generateCmd.Flags().StringSliceVar(&genJurisdictions, "jurisdictions", []string{"US"}, "Jurisdiction codes (US, EU, UK, CA, AU, IL, Other)")
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", ".", "Output directory ('-' writes to stdout)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print per-section progress")
	_ = generateCmd.MarkFlagRequired("vars")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(genConfigPath)
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || genVerbose

	data, err := os.ReadFile(genVarsPath)
	if err != nil {
		return fmt.Errorf("failed to read product variables: %w", err)
	}
	var vars types.ProductVars
	if err := json.Unmarshal(data, &vars); err != nil {
		return fmt.Errorf("failed to parse product variables JSON: %w", err)
	}

	req := types.GenerateRequest{
		ProductVars: vars,
		Tone:        types.Tone(genTone),
	}
	for _, d := range genDocs {
		docType := types.DocType(d)
		if docType != types.DocTypeToS && docType != types.DocTypePrivacy {
			return fmt.Errorf("unknown document type %q", d)
		}
		req.Docs = append(req.Docs, docType)
	}
	for _, j := range genJurisdictions {
		req.Jurisdictions = append(req.Jurisdictions, types.Jurisdiction(j))
	}
	if err := req.Validate(); err != nil {
		return err
	}

	pipeline, cleanup, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	docs, err := pipeline.AdHoc(ctx, req)
	if err != nil {
		return err
	}

	return emitDocuments(docs, genOutDir, nil)
}

// emitDocuments writes each generated document and reports checklist
// gaps to stderr. Error-severity gaps make the command fail.
func emitDocuments(docs generate.Documents, outDir string, profileGaps []types.Gap) error {
	names := map[types.DocType]string{
		types.DocTypeToS:     "terms_of_service.md",
		types.DocTypePrivacy: "privacy_policy.md",
	}

	hasErrors := false
	allGaps := append([]types.Gap{}, profileGaps...)
	for _, docType := range []types.DocType{types.DocTypeToS, types.DocTypePrivacy} {
		md, ok := docs[docType]
		if !ok {
			continue
		}

		path := "-"
		if outDir != "-" {
			path = filepath.Join(outDir, names[docType])
		}
		if err := writeDocument(path, md); err != nil {
			return err
		}
		allGaps = append(allGaps, checklist.Validate(docType, md)...)
	}

	for _, gap := range allGaps {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", gap.Severity, gap.Message)
		if gap.Severity == types.SeverityError {
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("checklist found %d gap(s), see output above", len(allGaps))
	}
	return nil
}
