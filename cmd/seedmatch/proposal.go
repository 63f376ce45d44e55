// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seedmatch/internal/store"
	"github.com/pdiddy/seedmatch/pkg/types"
)

var proposalCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Manage research seed proposals",
	Long: `Proposal creates, edits, and moves research seed proposals through their
lifecycle. New proposals start as drafts; only published proposals are
offered as match candidates. Drafts may be edited; published proposals must
be unpublished first.`,
}

// --- add ---

var proposalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a draft proposal",
	RunE:  runProposalAdd,
}

func runProposalAdd(cmd *cobra.Command, args []string) error {
	p, err := proposalFromFlags(cmd, types.Proposal{})
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	created, err := s.CreateProposal(context.Background(), p)
	if err != nil {
		return err
	}
	fmt.Println(created.ID)
	return nil
}

// --- list ---

var proposalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List proposals, optionally filtered by status and field",
	RunE:  runProposalList,
}

func runProposalList(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	proposals, err := s.ListProposals(context.Background(), filter)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(proposals)
	}
	formatProposalTable(proposals, os.Stdout)
	return nil
}

func formatProposalTable(proposals []types.Proposal, w io.Writer) {
	if len(proposals) == 0 {
		fmt.Fprintln(w, "No proposals found.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-10s  %-12s  %s\n", "ID", "Status", "Field", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, p := range proposals {
		fmt.Fprintf(w, "%-36s  %-10s  %-12s  %s\n", p.ID, p.Status, p.Field, p.Title)
	}
	fmt.Fprintf(w, "\n%d proposals\n", len(proposals))
}

// --- show ---

var proposalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a proposal as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.GetProposal(context.Background(), args[0])
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(p)
	},
}

// --- edit ---

var proposalEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the fields of a draft proposal",
	Long: `Edit updates the flags given on the command line and leaves the rest
unchanged. Only drafts can be edited.`,
	Args: cobra.ExactArgs(1),
	RunE: runProposalEdit,
}

func runProposalEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	current, err := s.GetProposal(ctx, args[0])
	if err != nil {
		return err
	}

	p, err := proposalFromFlags(cmd, current)
	if err != nil {
		return err
	}

	updated, err := s.UpdateProposal(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s\n", updated.ID)
	return nil
}

// --- lifecycle ---

func statusCommand(use, short string, apply func(*store.Store, context.Context, string) (types.Proposal, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := apply(s, context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", p.ID, p.Status)
			return nil
		},
	}
}

var (
	proposalPublishCmd   = statusCommand("publish", "Publish a draft so it can be matched", (*store.Store).Publish)
	proposalUnpublishCmd = statusCommand("unpublish", "Return a published proposal to draft", (*store.Store).Unpublish)
	proposalArchiveCmd   = statusCommand("archive", "Archive a draft or published proposal", (*store.Store).Archive)
)

var proposalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteProposal(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

// --- import / export ---

var proposalImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import proposals from a YAML or JSON file",
	Long: `Import upserts the proposals listed in a YAML (.yaml, .yml) or JSON file.
Statuses in the file are kept, so seed data can be loaded already published.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.ImportProposals(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("created: %d, updated: %d, failed: %d\n", summary.Created, summary.Updated, summary.Failed)
		if summary.Failed > 0 {
			return fmt.Errorf("%d proposal(s) failed import", summary.Failed)
		}
		return nil
	},
}

var proposalExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export proposals to a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ExportProposals(context.Background(), args[0], filter)
		if err != nil {
			return err
		}
		fmt.Printf("exported %d proposals to %s\n", n, args[0])
		return nil
	},
}

// --- shared helpers ---

// proposalFromFlags overlays the text flags that were set onto base.
func proposalFromFlags(cmd *cobra.Command, base types.Proposal) (types.Proposal, error) {
	p := base
	text := map[string]*string{
		"title":            &p.Title,
		"summary":          &p.Summary,
		"background":       &p.Background,
		"objective":        &p.Objective,
		"approach":         &p.Approach,
		"expected-outcome": &p.ExpectedOutcome,
	}
	for name, dst := range text {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}

	if cmd.Flags().Changed("field") {
		raw, _ := cmd.Flags().GetString("field")
		f, err := types.ParseField(raw)
		if err != nil {
			return types.Proposal{}, err
		}
		p.Field = f
	}
	return p, nil
}

func filterFromFlags(cmd *cobra.Command) (store.ProposalFilter, error) {
	var filter store.ProposalFilter

	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		st, err := types.ParseStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}
	if raw, _ := cmd.Flags().GetString("field"); raw != "" {
		f, err := types.ParseField(raw)
		if err != nil {
			return filter, err
		}
		filter.Field = f
	}
	return filter, nil
}

func addProposalFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "proposal title")
	cmd.Flags().String("field", "", "research field: medical, engineering, chemistry, it")
	cmd.Flags().String("summary", "", "short abstract")
	cmd.Flags().String("background", "", "research background")
	cmd.Flags().String("objective", "", "research objective")
	cmd.Flags().String("approach", "", "methods and procedures")
	cmd.Flags().String("expected-outcome", "", "anticipated results")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("status", "", "filter by status: draft, published, archived")
	cmd.Flags().String("field", "", "filter by research field")
}

func init() {
	addProposalFlags(proposalAddCmd)
	proposalAddCmd.MarkFlagRequired("title")
	proposalAddCmd.MarkFlagRequired("field")

	addProposalFlags(proposalEditCmd)

	addFilterFlags(proposalListCmd)
	proposalListCmd.Flags().Bool("json", false, "output proposals as JSON")

	addFilterFlags(proposalExportCmd)

	proposalCmd.AddCommand(proposalAddCmd)
	proposalCmd.AddCommand(proposalListCmd)
	proposalCmd.AddCommand(proposalShowCmd)
	proposalCmd.AddCommand(proposalEditCmd)
	proposalCmd.AddCommand(proposalPublishCmd)
	proposalCmd.AddCommand(proposalUnpublishCmd)
	proposalCmd.AddCommand(proposalArchiveCmd)
	proposalCmd.AddCommand(proposalDeleteCmd)
	proposalCmd.AddCommand(proposalImportCmd)
	proposalCmd.AddCommand(proposalExportCmd)

	rootCmd.AddCommand(proposalCmd)
}
