package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"gasradar/config"
	"gasradar/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply every pending migration",
				Action: func(c *cli.Context) error {
					return withMigrator(c.Context, func(ctx context.Context, provider *goose.Provider) error {
						results, err := provider.Up(ctx)
						if err != nil {
							return errors.Wrap(err, "apply migrations")
						}
						for _, r := range results {
							fmt.Fprintf(c.App.Writer, "applied %d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
						}
						if len(results) == 0 {
							fmt.Fprintln(c.App.Writer, "schema is up to date")
						}

						return nil
					})
				},
			},
			{
				Name:  "down",
				Usage: "Roll back the latest migration",
				Action: func(c *cli.Context) error {
					return withMigrator(c.Context, func(ctx context.Context, provider *goose.Provider) error {
						result, err := provider.Down(ctx)
						if err != nil {
							return errors.Wrap(err, "roll back migration")
						}
						fmt.Fprintf(c.App.Writer, "rolled back %d %s\n", result.Source.Version, result.Source.Path)

						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show applied and pending migrations",
				Action: func(c *cli.Context) error {
					return withMigrator(c.Context, func(ctx context.Context, provider *goose.Provider) error {
						statuses, err := provider.Status(ctx)
						if err != nil {
							return errors.Wrap(err, "read migration status")
						}

						w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
						fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
						for _, s := range statuses {
							appliedAt := "-"
							if !s.AppliedAt.IsZero() {
								appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
							}
							fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, appliedAt, s.Source.Path)
						}

						return w.Flush()
					})
				},
			},
		},
	}
}

// withMigrator opens a plain connection pool; migrations do not need the rest of the graph.
func withMigrator(ctx context.Context, fn func(ctx context.Context, provider *goose.Provider) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	provider, err := postgres.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	return fn(ctx, provider)
}
