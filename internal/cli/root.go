package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var errOwnerRequired = errors.New("--owner is required")

// runner carries what every command needs.
type runner struct {
	factory ServicesFactory
	now     func() time.Time
}

// NewRootCmd assembles labctl.
func NewRootCmd(factory ServicesFactory) *cobra.Command {
	r := &runner{factory: factory, now: time.Now}

	root := &cobra.Command{
		Use:   "labctl",
		Short: "labctl - dental laboratory operations",
		Long: `labctl manages the service catalog and work orders of a dental laboratory
from the command line: spreadsheet import/export, status changes and draft recovery.`,
		SilenceUsage: true,
	}
	root.AddCommand(r.catalogCmd())
	root.AddCommand(r.ordersCmd())
	root.AddCommand(r.draftCmd())
	return root
}

// withServices connects, runs fn and releases the connections.
func (r *runner) withServices(ctx context.Context, fn func(Services) error) error {
	svc, release, err := r.factory(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(svc)
}

func ownerFlag(cmd *cobra.Command) (string, error) {
	owner, _ := cmd.Flags().GetString("owner")
	if owner == "" {
		return "", errOwnerRequired
	}
	return owner, nil
}
