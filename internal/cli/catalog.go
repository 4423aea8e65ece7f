package cli

import (
	"fmt"
	"os"

	"dental_lab/internal/adapter/export"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (r *runner) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the service catalog",
	}

	templateCmd := &cobra.Command{
		Use:   "template [file]",
		Short: "Write an empty catalog spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.WriteCatalogTemplate(f); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Template written to %s\n", args[0])
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import services from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, rejected, err := export.ParseCatalog(f)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			return r.withServices(cmd.Context(), func(svc Services) error {
				res, err := svc.Catalog.ImportServices(cmd.Context(), owner, rows)
				if err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
				rejected = append(rejected, res.Rejected...)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %d services imported\n", color.New(color.FgGreen).Sprint("✓"), len(res.Created))
				for _, rej := range rejected {
					fmt.Fprintf(out, "  %s row %d %s: %s\n", color.New(color.FgYellow).Sprint("!"), rej.Row, rej.Name, rej.Reason)
				}
				return nil
			})
		},
	}
	importCmd.Flags().String("owner", "", "Laboratory id")

	cmd.AddCommand(templateCmd, importCmd)
	return cmd
}
