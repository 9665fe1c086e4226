package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/checklist"
	"github.com/mfeldman/termsmith/internal/generate"
	"github.com/mfeldman/termsmith/internal/types"
)

var generateProfileCmd = &cobra.Command{
	Use:   "generate-from-profile <profile-id>",
	Short: "Draft documents from a stored company profile",
	Long: `Loads a company profile from the profile store, plans the section list
from the profile's feature flags, and drafts the requested documents.
Profile-level compliance gaps are reported alongside the checklist results.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateProfile,
}

var (
	genProfConfigPath string
	genProfDocs       []string
	genProfTone       string
	genProfOutDir     string
	genProfVerbose    bool
	genProfPrivacy    bool
)

func init() {
	generateProfileCmd.Flags().StringVar(&genProfConfigPath, "config", "", "Path to config.json file")
	generateProfileCmd.Flags().StringSliceVar(&genProfDocs, "docs", []string{"tos", "privacy"}, "Document types to draft (tos, privacy)")
	generateProfileCmd.Flags().StringVar(&genProfTone, "tone", "plain", "Drafting tone (plain, formal)")
	generateProfileCmd.Flags().StringVarP(&genProfOutDir, "out", "o", ".", "Output directory ('-' writes to stdout)")
	generateProfileCmd.Flags().BoolVarP(&genProfVerbose, "verbose", "v", false, "Print per-section progress")
	generateProfileCmd.Flags().BoolVar(&genProfPrivacy, "privacy-single-pass", false, "Draft the privacy policy in one specialized call instead of per-section")
	rootCmd.AddCommand(generateProfileCmd)
}

func runGenerateProfile(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(genProfConfigPath)
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || genProfVerbose

	store, err := openProfileStore(cfg)
	if err != nil {
		return err
	}
	profile, err := store.Read(args[0])
	if err != nil {
		return err
	}

	pipeline, cleanup, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if genProfPrivacy {
		md, err := pipeline.PrivacyPolicy(ctx, profile)
		if err != nil {
			return err
		}
		docs := generate.Documents{types.DocTypePrivacy: md}
		return emitDocuments(docs, genProfOutDir, checklist.ProfileGaps(profile))
	}

	var docTypes []types.DocType
	for _, d := range genProfDocs {
		docType := types.DocType(d)
		if docType != types.DocTypeToS && docType != types.DocTypePrivacy {
			return fmt.Errorf("unknown document type %q", d)
		}
		docTypes = append(docTypes, docType)
	}

	docs, err := pipeline.FromProfile(ctx, profile, docTypes, types.Tone(genProfTone))
	if err != nil {
		return err
	}
	return emitDocuments(docs, genProfOutDir, checklist.ProfileGaps(profile))
}
