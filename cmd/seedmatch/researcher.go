// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seedmatch/internal/researcher"
	"github.com/pdiddy/seedmatch/pkg/types"
)

var researcherCmd = &cobra.Command{
	Use:   "researcher",
	Short: "Search the researcher directory",
	Long: `Researcher loads researcher profiles into the local database and searches
them by name, research summary, specialization, keywords, and publication
titles, with optional field, institution, h-index, and patent filters.`,
}

var researcherImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import researcher profiles from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.ImportResearchers(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("created: %d, updated: %d, failed: %d\n", summary.Created, summary.Updated, summary.Failed)
		if summary.Failed > 0 {
			return fmt.Errorf("%d researcher(s) failed import", summary.Failed)
		}
		return nil
	},
}

var researcherSearchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search researchers by text and filters",
	RunE:  runResearcherSearch,
}

func runResearcherSearch(cmd *cobra.Command, args []string) error {
	fields, _ := cmd.Flags().GetStringSlice("field")
	institution, _ := cmd.Flags().GetString("institution")
	minH, _ := cmd.Flags().GetInt("min-h-index")
	hasPatents, _ := cmd.Flags().GetBool("has-patents")

	filters := types.SearchFilters{
		Fields:      fields,
		Institution: institution,
		MinHIndex:   minH,
		HasPatents:  hasPatents,
	}

	profiles, err := loadResearchers()
	if err != nil {
		return err
	}
	results := researcher.Search(profiles, strings.Join(args, " "), filters)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return researcher.FormatJSON(results, os.Stdout)
	}
	researcher.FormatTable(results, os.Stdout)
	return nil
}

var researcherFieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the research fields present in the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := loadResearchers()
		if err != nil {
			return err
		}
		for _, f := range researcher.Fields(profiles) {
			fmt.Println(f)
		}
		return nil
	},
}

var researcherInstitutionsCmd = &cobra.Command{
	Use:   "institutions",
	Short: "List the institutions present in the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := loadResearchers()
		if err != nil {
			return err
		}
		for _, inst := range researcher.Institutions(profiles) {
			fmt.Println(inst)
		}
		return nil
	},
}

func loadResearchers() ([]types.ResearcherProfile, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.ListResearchers(context.Background())
}

func init() {
	researcherSearchCmd.Flags().StringSlice("field", nil, "restrict to these fields (repeatable or comma-separated)")
	researcherSearchCmd.Flags().String("institution", "", "institution name substring")
	researcherSearchCmd.Flags().Int("min-h-index", 0, "minimum h-index")
	researcherSearchCmd.Flags().Bool("has-patents", false, "only researchers with patents")
	researcherSearchCmd.Flags().Bool("json", false, "output results as JSON")

	researcherCmd.AddCommand(researcherImportCmd)
	researcherCmd.AddCommand(researcherSearchCmd)
	researcherCmd.AddCommand(researcherFieldsCmd)
	researcherCmd.AddCommand(researcherInstitutionsCmd)

	rootCmd.AddCommand(researcherCmd)
}
