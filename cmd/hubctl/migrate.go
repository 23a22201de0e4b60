package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (default: database.dsn from config)")

	open := func() (*postgres.Migrator, error) {
		if dsn == "" {
			dsn = os.Getenv("DATABASE_DSN")
		}
		if dsn == "" {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return nil, err
			}
			dsn = cfg.Database.DSN
		}
		return postgres.NewMigrator(dsn)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := open()
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck

			n, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := open()
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck

			return m.Down(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := open()
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck

			states, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tAPPLIED\tSOURCE")
			for _, s := range states {
				fmt.Fprintf(tw, "%d\t%t\t%s\n", s.Version, s.Applied, s.Source)
			}
			return tw.Flush()
		},
	})

	return cmd
}
