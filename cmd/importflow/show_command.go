package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"importflow/internal/dossier"
	"importflow/internal/rules"
	"importflow/internal/stage"
	"importflow/internal/workflow"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <dossier-id>",
		Short: "Display one dossier in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *workflow.Service) error {
				d, err := svc.Get(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				status := svc.SLA(d)
				fmt.Fprintf(out, "%s · %s\n", d.ID, d.Supplier)
				fmt.Fprintf(out, "Stage: %s (%d/%d) · Pending: %s\n",
					d.Stage(), d.StageIndex+1, stage.Count(), d.Responsible)
				fmt.Fprintf(out, "SLA: %s remaining (%s) · deadline %s\n",
					formatSLA(status.HoursRemaining), status.Tone,
					status.Deadline.Format("2006-01-02 15:04"))
				fmt.Fprintf(out, "ETA %s · %s · %s · via %s · forwarder %s\n",
					d.ETA.Format("2006-01-02"), d.Warehouse, d.Incoterm, d.TransportMode, d.Forwarder)

				if len(d.Products) > 0 {
					fmt.Fprintln(out, "\nProducts")
					rows := make([][]string, 0, len(d.Products))
					for _, p := range d.Products {
						rows = append(rows, []string{p.SKU, p.Description, p.Registration, p.StorageCondition})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"SKU", "Description", "Registration", "Storage"}, rows, nil))
				}

				fmt.Fprintln(out, "\nDocument checklist")
				printChecklist(out, d)

				if d.Stage() == stage.COMEXReview {
					if missing := rules.MissingFor(stage.QFReview, d); len(missing) == 0 {
						fmt.Fprintln(out, "Missing for QF review: none")
					} else {
						fmt.Fprintln(out, "Missing for QF review: "+joinIDs(missing))
					}
				}

				if len(d.Receiving) > 0 {
					fmt.Fprintln(out, "\nReceiving records")
					rows := make([][]string, 0, len(d.Receiving))
					for _, r := range d.Receiving {
						rows = append(rows, []string{
							r.Lot, r.Expiry, fmt.Sprintf("%g", r.Quantity),
							yesNo(r.ColdChain), yesNo(r.TemperatureOK),
						})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"Lot", "Expiry", "Qty", "Cold chain", "Temp OK"}, rows, nil))
				}

				fmt.Fprintln(out, "\nHistory (most recent first)")
				for _, h := range d.History {
					fmt.Fprintf(out, "  %s  %-10s %s\n", h.At.Format("2006-01-02 15:04"), h.Actor, h.Message)
				}

				if actions := rules.Permitted(svc.Role(), d.Stage()); len(actions) > 0 {
					names := make([]string, len(actions))
					for i, a := range actions {
						names[i] = string(a)
					}
					fmt.Fprintf(out, "\nAvailable to %s here: %s\n", svc.Role(), strings.Join(names, ", "))
				}
				return nil
			})
		},
	}
	return cmd
}

func printChecklist(out io.Writer, d *dossier.Dossier) {
	rows := make([][]string, 0, len(dossier.Documents()))
	for _, spec := range dossier.Documents() {
		marker := ""
		if spec.Mandatory {
			marker = "*"
		}
		rows = append(rows, []string{
			string(spec.ID) + marker,
			spec.Name,
			string(spec.Owner),
			string(d.DocumentStatus(spec.ID)),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Document", "Owner", "Status"}, rows, nil))
}

func joinIDs(ids []dossier.DocID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
