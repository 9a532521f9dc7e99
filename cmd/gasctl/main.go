package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gasctl",
		Usage: "Operate the gasradar database and background jobs",
		Commands: []*cli.Command{
			migrateCommand(),
			jobCommand("sync", "Reconcile the station store with the upstream feed"),
			jobCommand("record", "Append changed prices to the price history"),
			jobCommand("notify", "Scan saved stations and send low-price alerts"),
			nearbyCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
