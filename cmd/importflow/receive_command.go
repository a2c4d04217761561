package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"importflow/internal/receiving"
	"importflow/internal/workflow"
)

func newReceiveCommand(ctx *commandContext) *cobra.Command {
	var lot string
	var expiry string
	var quantity string
	var coldChain bool
	var tempOK bool

	cmd := &cobra.Command{
		Use:   "receive <dossier-id>",
		Short: "Record a physical receipt at Arrival & Receiving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				candidate := receiving.Candidate{
					Lot:       lot,
					Expiry:    expiry,
					Quantity:  quantity,
					ColdChain: coldChain,
				}
				if cmd.Flags().Changed("temp-ok") {
					candidate.TemperatureOK = &tempOK
				}

				result, err := svc.RecordReceipt(args[0], candidate)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&lot, "lot", "", "Lot code")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry, year-month (YYYY-MM)")
	cmd.Flags().StringVar(&quantity, "qty", "", "Received quantity")
	cmd.Flags().BoolVar(&coldChain, "cold-chain", false, "Shipment travels under cold chain")
	cmd.Flags().BoolVar(&tempOK, "temp-ok", true, "Temperature on arrival was acceptable")
	return cmd
}
