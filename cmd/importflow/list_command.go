package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"importflow/internal/workflow"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var search string
	var stageFilter string
	var sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the dossier worklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				dossiers, err := svc.Worklist(search, stageFilter, sortKey)
				if err != nil {
					return err
				}

				headers := []string{"ID", "Supplier", "Stage", "Pending", "ETA", "SLA"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
				rows := make([][]string, 0, len(dossiers))
				for _, d := range dossiers {
					status := svc.SLA(d)
					rows = append(rows, []string{
						d.ID,
						d.Supplier,
						string(d.Stage()),
						string(d.Responsible),
						d.ETA.Format("2006-01-02"),
						formatSLA(status.HoursRemaining) + " (" + string(status.Tone) + ")",
					})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				fmt.Fprintf(cmd.OutOrStdout(), "Showing %d dossier(s) as %s\n", len(dossiers), svc.Role())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Substring match on id, supplier, warehouse, transport, forwarder")
	cmd.Flags().StringVar(&stageFilter, "stage", "all", "Filter by stage name (\"all\" for no filter)")
	cmd.Flags().StringVar(&sortKey, "sort", "eta_asc", "Sort key: eta_asc, eta_desc, sla_asc, sla_desc")
	return cmd
}

func formatSLA(hoursRemaining float64) string {
	rounded := int(math.Max(0, math.Round(hoursRemaining)))
	return strconv.Itoa(rounded) + "h"
}
