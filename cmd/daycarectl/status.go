package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved daycare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stores, err := c.openStores(cmd.Context())
			if err != nil {
				return err
			}
			defer stores.Close()

			data, err := stores.Session.Load(cmd.Context())
			if errors.Is(err, domain.ErrNoSavedSession) {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved daycare")
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading session: %w", err)
			}

			printStatus(cmd.OutOrStdout(), data)
			return nil
		},
	}
}

func printStatus(w io.Writer, data *domain.SaveData) {
	p := printer()

	name := data.DaycareName
	if name == "" {
		name = "(unnamed)"
	}
	if !data.HasStarted {
		name += " (not started)"
	}

	p.Fprintf(w, "Daycare:  %s\n", name)
	p.Fprintf(w, "Money:    $%d\n", data.Money)
	p.Fprintf(w, "Dogs:     %d/%d\n", len(data.Dogs), data.MaxDogs)
	for _, d := range data.Dogs {
		p.Fprintf(w, "  %-12s %-18s %-9s hunger %5.1f  happiness %5.1f  energy %5.1f  %4.1fs left\n",
			d.Name, d.Breed, d.State, d.Hunger, d.Happiness, d.Energy, d.TimeRemaining)
	}
	p.Fprintf(w, "Workers:  %d\n", len(data.Workers))
	p.Fprintf(w, "Upgrades: %s\n", ownedUpgrades(data.Upgrades))
	if data.ActiveEvent != nil {
		p.Fprintf(w, "Event:    %s (%.1fs left)\n", data.ActiveEvent.Name, data.ActiveEvent.Duration)
	}
	if data.LastSaveTime > 0 {
		p.Fprintf(w, "Saved:    %s\n", time.UnixMilli(data.LastSaveTime).UTC().Format(time.RFC3339))
	}
}

func ownedUpgrades(u domain.Upgrades) string {
	var owned []string
	for _, key := range domain.UpgradeKeys {
		if u.Has(key) {
			owned = append(owned, string(key))
		}
	}
	if len(owned) == 0 {
		return "none"
	}
	return strings.Join(owned, ", ")
}
