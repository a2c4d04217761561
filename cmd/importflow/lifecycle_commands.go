package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importflow/internal/dossier"
	"importflow/internal/workflow"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a pre-alert dossier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				result, err := svc.CreatePreAlert()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace all dossiers with the demo seed data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				if err := svc.ResetSeed(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Demo data restored")
				return nil
			})
		},
	}
}

func newRoleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "role [name]",
		Short: "Show or persist the acting role",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				if len(args) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Acting as %s\n", svc.Role())
					return nil
				}
				role, ok := dossier.ParseRole(args[0])
				if !ok {
					return fmt.Errorf("unknown role %q", args[0])
				}
				if err := svc.SetRole(role); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Now acting as %s\n", role)
				return nil
			})
		},
	}
}
