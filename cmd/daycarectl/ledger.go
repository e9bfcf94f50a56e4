package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/DogDaycare_Go/internal/daycare"
)

// defaultLedgerLimit bounds the history read when --limit is not given
const defaultLedgerLimit = 1000

func newLedgerCmd(c *cli) *cobra.Command {
	var (
		limit int
		asCSV bool
	)

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Summarize or export the departure history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stores, err := c.openStores(cmd.Context())
			if err != nil {
				return err
			}
			defer stores.Close()

			deps, err := stores.Departures.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("reading departure history: %w", err)
			}

			if asCSV {
				return daycare.WriteCSV(cmd.OutOrStdout(), deps)
			}
			printSummary(cmd.OutOrStdout(), daycare.Summarize(deps))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultLedgerLimit, "number of most recent departures to read")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write the departures as CSV instead of a summary")
	return cmd
}

func printSummary(w io.Writer, s daycare.LedgerSummary) {
	p := printer()
	p.Fprintf(w, "Departures:   %d\n", s.Count)
	if s.Count == 0 {
		return
	}
	p.Fprintf(w, "Successful:   %d (%.1f%%)\n", s.Successes, s.SuccessRate*100)
	p.Fprintf(w, "Total payout: $%d\n", s.TotalPayout)
	p.Fprintf(w, "Mean payout:  $%.2f (stddev %.2f)\n", s.MeanPayout, s.StdDevPayout)
	p.Fprintf(w, "Mean score:   %.1f\n", s.MeanScore)
}
