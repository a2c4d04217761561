package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var roleFlag string

	ctx := newCommandContext(&configFlag, &roleFlag)

	rootCmd := &cobra.Command{
		Use:           "importflow",
		Short:         "Track import dossiers through the regulatory approval workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "", "Act as this role for the invocation (COMEX, Operations, QF)")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newSendQFCommand(ctx))
	rootCmd.AddCommand(newApproveQFCommand(ctx))
	rootCmd.AddCommand(newObserveCommand(ctx))
	rootCmd.AddCommand(newScheduleEntryCommand(ctx))
	rootCmd.AddCommand(newReceiveCommand(ctx))
	rootCmd.AddCommand(newFinalReleaseCommand(ctx))
	rootCmd.AddCommand(newDocCommand(ctx))
	rootCmd.AddCommand(newCommentCommand(ctx))
	rootCmd.AddCommand(newNewCommand(ctx))
	rootCmd.AddCommand(newResetCommand(ctx))
	rootCmd.AddCommand(newRoleCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
