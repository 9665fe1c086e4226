package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/checklist"
	"github.com/mfeldman/termsmith/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <document.md>",
	Short: "Run the compliance checklist against a markdown document",
	Long: `Checks a drafted document for missing critical sections and leftover
scaffolding. Exits non-zero when error-severity gaps are found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkDocType string

func init() {
	checkCmd.Flags().StringVar(&checkDocType, "type", "tos", "Document type to check against (tos, privacy)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	docType := types.DocType(checkDocType)
	if docType != types.DocTypeToS && docType != types.DocTypePrivacy {
		return fmt.Errorf("unknown document type %q", checkDocType)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	gaps := checklist.Validate(docType, string(data))
	if len(gaps) == 0 {
		fmt.Printf("%s: no gaps found\n", args[0])
		return nil
	}

	hasErrors := false
	for _, gap := range gaps {
		fmt.Printf("[%s] %s\n", gap.Severity, gap.Message)
		if gap.Severity == types.SeverityError {
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("%d gap(s) found", len(gaps))
	}
	return nil
}
