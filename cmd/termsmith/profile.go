package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfeldman/termsmith/internal/profilestore"
	"github.com/mfeldman/termsmith/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored company profiles",
}

var profileConfigPath string

var profileCreateCmd = &cobra.Command{
	Use:   "create <profile.json>",
	Short: "Validate and store a new company profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := profileStoreFromConfig()
		if err != nil {
			return err
		}
		profile, err := readProfileFile(args[0])
		if err != nil {
			return err
		}
		created, err := store.Create(profile)
		if err != nil {
			return err
		}
		fmt.Printf("Created profile %s (%s)\n", created.ProfileID, created.ProfileName)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <profile-id>",
	Short: "Print a stored profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := profileStoreFromConfig()
		if err != nil {
			return err
		}
		profile, err := store.Read(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize profile: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update <profile-id> <profile.json>",
	Short: "Replace a stored profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := profileStoreFromConfig()
		if err != nil {
			return err
		}
		profile, err := readProfileFile(args[1])
		if err != nil {
			return err
		}
		updated, err := store.Update(args[0], profile)
		if err != nil {
			return err
		}
		fmt.Printf("Updated profile %s (%s)\n", updated.ProfileID, updated.ProfileName)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <profile-id>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := profileStoreFromConfig()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %s\n", args[0])
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := profileStoreFromConfig()
		if err != nil {
			return err
		}
		summaries, err := store.List()
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No profiles stored")
			return nil
		}
		for _, s := range summaries {
			fmt.Printf("%s  %s (%s)\n", s.ProfileID, s.ProfileName, s.CompanyLegalName)
		}
		return nil
	},
}

func init() {
	profileCmd.PersistentFlags().StringVar(&profileConfigPath, "config", "", "Path to config.json file")
	profileCmd.AddCommand(profileCreateCmd, profileShowCmd, profileUpdateCmd, profileDeleteCmd, profileListCmd)
	rootCmd.AddCommand(profileCmd)
}

func profileStoreFromConfig() (*profilestore.Store, error) {
	cfg, err := loadMergedConfig(profileConfigPath)
	if err != nil {
		return nil, err
	}
	return openProfileStore(cfg)
}

func readProfileFile(path string) (*types.CompanyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}
