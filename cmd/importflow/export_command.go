package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importflow/internal/workflow"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export <dossier-id>",
		Short: "Write a dossier as pretty-printed JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				path, err := svc.Export(args[0], dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the export into")
	return cmd
}
