package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importflow/internal/dossier"
	"importflow/internal/workflow"
)

func newDocCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Work with the document checklist",
	}

	toggle := &cobra.Command{
		Use:   "toggle <dossier-id> <doc-id>",
		Short: "Cycle a document through pending → uploaded → approved",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				docID, ok := dossier.ParseDocID(args[1])
				if !ok {
					return fmt.Errorf("unknown document %q", args[1])
				}
				result, err := svc.ToggleDocument(args[0], docID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}

	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "List the known checklist documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(dossier.Documents()))
			for _, spec := range dossier.Documents() {
				mandatory := ""
				if spec.Mandatory {
					mandatory = "yes"
				}
				rows = append(rows, []string{string(spec.ID), spec.Name, string(spec.Owner), mandatory})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Document", "Owner", "Mandatory"}, rows, nil))
			return nil
		},
	}

	cmd.AddCommand(toggle)
	cmd.AddCommand(catalog)
	return cmd
}

func newCommentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <dossier-id> <text>",
		Short: "Add a free-text note to the dossier history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				result, err := svc.AddComment(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}
}
