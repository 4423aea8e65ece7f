package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"dental_lab/internal/adapter/export"
	"dental_lab/internal/usecase/draft"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// stdinConfirmer asks the recovery question on out and reads y/n from in.
func stdinConfirmer(in io.Reader, out io.Writer) draft.Confirmer {
	reader := bufio.NewReader(in)
	return draft.ConfirmFunc(func(_ context.Context, p draft.RecoveryPrompt) bool {
		fmt.Fprintf(out, "Unsaved work from %s: %s, %d items, %s\n",
			p.SavedAt.Local().Format("2006-01-02 15:04"), p.PatientName, p.ItemCount, export.FormatMoney(p.Total))
		fmt.Fprint(out, "Recover it? [y/N] ")
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "s", "si", "sí":
			return true
		}
		return false
	})
}

func (r *runner) draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect the saved work-order draft",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run the startup check and offer to recover unsaved work",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			return r.withServices(cmd.Context(), func(svc Services) error {
				session, _ := svc.Drafts.Open(owner)
				out := cmd.OutOrStdout()

				res, err := session.Start(cmd.Context(), stdinConfirmer(cmd.InOrStdin(), out))
				if err != nil {
					return err
				}
				switch res.Outcome {
				case draft.OutcomeRestored:
					v := session.View()
					fmt.Fprintf(out, "%s %s: %s, %d items, %s\n", color.New(color.FgGreen).Sprint("✓"),
						res.Notice, v.Draft.PatientName, len(v.Draft.Items), export.FormatMoney(v.Total))
				case draft.OutcomeDeclined:
					fmt.Fprintln(out, "Saved draft discarded.")
				default:
					fmt.Fprintln(out, "No unsaved work.")
				}
				return nil
			})
		},
	}
	checkCmd.Flags().String("owner", "", "Laboratory id")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the draft and its saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("%w: pass --yes", draft.ErrConfirmationRequired)
			}
			return r.withServices(cmd.Context(), func(svc Services) error {
				session, _ := svc.Drafts.Open(owner)
				if _, err := session.Start(cmd.Context(), draft.Answer(false)); err != nil {
					return err
				}
				if err := session.ClearAll(cmd.Context(), true); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Draft cleared")
				return nil
			})
		},
	}
	clearCmd.Flags().String("owner", "", "Laboratory id")
	clearCmd.Flags().Bool("yes", false, "Confirm discarding the draft")

	cmd.AddCommand(checkCmd, clearCmd)
	return cmd
}
