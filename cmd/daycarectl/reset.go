package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("refusing to reset without --yes")

func newResetCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved daycare",
		Long: `Delete the saved daycare so the next start begins from the default session.

The departure history is kept. A running server keeps its in-memory session
and will write it back on its next save; use POST /api/v1/session/reset there
instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errResetNotConfirmed
			}

			stores, err := c.openStores(cmd.Context())
			if err != nil {
				return err
			}
			defer stores.Close()

			if err := stores.Session.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved daycare cleared (%s store)\n", stores.Driver)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
