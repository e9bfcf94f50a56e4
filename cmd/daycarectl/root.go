package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/DogDaycare_Go/internal/bootstrap"
	"github.com/osse101/DogDaycare_Go/internal/config"
)

// cli carries the configuration shared by every subcommand
type cli struct {
	load   func() (*config.Config, error)
	cfg    *config.Config
	driver string
}

func newRootCmd(load func() (*config.Config, error)) *cobra.Command {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:          "daycarectl",
		Short:        "Inspect and maintain a dog daycare's saved state",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Store logs go to stderr so command output stays parseable
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn})))

			cfg, err := c.load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if c.driver != "" {
				cfg.StoreDriver = c.driver
			}
			c.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.driver, "driver", "", "override STORE_DRIVER (memory, file, sqlite, postgres)")

	root.AddCommand(
		newStatusCmd(c),
		newResetCmd(c),
		newMigrateCmd(c),
		newLedgerCmd(c),
	)
	return root
}

func (c *cli) openStores(ctx context.Context) (*bootstrap.Stores, error) {
	return bootstrap.OpenStores(ctx, c.cfg)
}

// printer formats money and counts with thousands separators
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}
