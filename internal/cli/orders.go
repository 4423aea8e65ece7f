package cli

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"dental_lab/internal/adapter/export"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func statusColor(s entities.WorkOrderStatus) *color.Color {
	switch s {
	case entities.WorkOrderStatusPendiente:
		return color.New(color.FgYellow)
	case entities.WorkOrderStatusProduccion:
		return color.New(color.FgBlue)
	case entities.WorkOrderStatusTerminado:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgHiBlack)
	}
}

func filterFromFlags(cmd *cobra.Command) (usecase.WorkOrderFilter, error) {
	clinic, _ := cmd.Flags().GetString("clinic")
	status, _ := cmd.Flags().GetString("status")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	f := usecase.WorkOrderFilter{ClinicID: clinic, Status: entities.WorkOrderStatus(status)}
	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return f, fmt.Errorf("invalid --from %q, want YYYY-MM-DD", from)
		}
		f.From = t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return f, fmt.Errorf("invalid --to %q, want YYYY-MM-DD", to)
		}
		f.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return f, nil
}

func (r *runner) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Work order operations",
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export work orders to xlsx or csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			if format != "xlsx" && format != "csv" {
				return fmt.Errorf("invalid --format %q: valid formats are xlsx, csv", format)
			}
			filter, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			return r.withServices(cmd.Context(), func(svc Services) error {
				ctx := cmd.Context()
				orders, err := svc.WorkOrders.ListWorkOrders(ctx, owner, filter)
				if err != nil {
					return fmt.Errorf("failed to list work orders: %w", err)
				}
				names, err := svc.Directory.Names(ctx, owner)
				if err != nil {
					return fmt.Errorf("failed to load directory: %w", err)
				}

				var buf bytes.Buffer
				if format == "csv" {
					err = export.WriteWorkOrdersCSV(&buf, orders, names)
				} else {
					err = export.WriteWorkOrdersXLSX(&buf, orders, names, r.now())
				}
				if err != nil {
					return err
				}
				if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %d work orders written to %s\n", len(orders), args[0])
				return nil
			})
		},
	}
	exportCmd.Flags().String("owner", "", "Laboratory id")
	exportCmd.Flags().String("format", "xlsx", "Output format: xlsx or csv")
	exportCmd.Flags().String("clinic", "", "Only orders of this clinic")
	exportCmd.Flags().String("status", "", "Only orders in this status")
	exportCmd.Flags().String("from", "", "First received day (YYYY-MM-DD)")
	exportCmd.Flags().String("to", "", "Last received day (YYYY-MM-DD)")

	orphansCmd := &cobra.Command{
		Use:   "orphans",
		Short: "List work orders saved without service rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			return r.withServices(cmd.Context(), func(svc Services) error {
				orders, err := svc.WorkOrders.FindOrphans(cmd.Context(), owner)
				if err != nil {
					return fmt.Errorf("failed to scan work orders: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(orders) == 0 {
					fmt.Fprintln(out, "No orphaned work orders.")
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tPATIENT\tRECEIVED\tTOTAL")
				for _, o := range orders {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.PatientName, o.ReceivedDate.Format(dateLayout), export.FormatMoney(o.TotalPrice))
				}
				return w.Flush()
			})
		},
	}
	orphansCmd.Flags().String("owner", "", "Laboratory id")

	advanceCmd := &cobra.Command{
		Use:   "advance [id]",
		Short: "Move a work order to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			return r.withServices(cmd.Context(), func(svc Services) error {
				order, err := svc.WorkOrders.AdvanceStatus(cmd.Context(), owner, args[0])
				if err != nil {
					return fmt.Errorf("failed to advance %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is now %s\n", order.ID, statusColor(order.Status).Sprint(order.Status))
				return nil
			})
		},
	}
	advanceCmd.Flags().String("owner", "", "Laboratory id")

	cmd.AddCommand(exportCmd, orphansCmd, advanceCmd)
	return cmd
}
