package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importflow/internal/engine"
	"importflow/internal/workflow"
)

// transitionCommand builds a one-argument command that runs a workflow
// transition and prints its message.
func transitionCommand(ctx *commandContext, use, short string,
	run func(*workflow.Service, string) (engine.Result, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <dossier-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				result, err := run(svc, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}
}

func newSendQFCommand(ctx *commandContext) *cobra.Command {
	return transitionCommand(ctx, "send-qf", "Send a dossier from COMEX review to QF review",
		func(svc *workflow.Service, id string) (engine.Result, error) {
			return svc.SendToQF(id)
		})
}

func newApproveQFCommand(ctx *commandContext) *cobra.Command {
	return transitionCommand(ctx, "approve-qf", "Approve the regulatory review",
		func(svc *workflow.Service, id string) (engine.Result, error) {
			return svc.ApproveQF(id)
		})
}

func newObserveCommand(ctx *commandContext) *cobra.Command {
	return transitionCommand(ctx, "observe", "Return a dossier to COMEX for adjustments",
		func(svc *workflow.Service, id string) (engine.Result, error) {
			return svc.ObserveQF(id)
		})
}

func newScheduleEntryCommand(ctx *commandContext) *cobra.Command {
	return transitionCommand(ctx, "schedule-entry", "Schedule the warehouse entry",
		func(svc *workflow.Service, id string) (engine.Result, error) {
			return svc.ScheduleEntry(id)
		})
}

func newFinalReleaseCommand(ctx *commandContext) *cobra.Command {
	return transitionCommand(ctx, "final-release", "Release the dossier and close it",
		func(svc *workflow.Service, id string) (engine.Result, error) {
			return svc.FinalRelease(id)
		})
}
