package main

import (
	"context"
	"encoding/json"

	"gasradar/internal/domain/constants"
	"gasradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func jobCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage + " (one cycle)",
		Action: func(c *cli.Context) error {
			return runJob(c, name)
		},
	}
}

func runJob(c *cli.Context, name string) error {
	var (
		syncUC   usecase.StationSyncUsecase
		recordUC usecase.PriceHistoryUsecase
		notifyUC usecase.LowPriceUsecase
	)

	return withApp(c.Context, func(ctx context.Context) error {
		var (
			report any
			err    error
		)
		switch name {
		case constants.JobStationSync:
			report, err = syncUC.SyncStations(ctx)
		case constants.JobPriceHistory:
			report, err = recordUC.RecordPrices(ctx)
		case constants.JobLowPriceAlert:
			report, err = notifyUC.NotifyLowPrices(ctx)
		default:
			return errors.Errorf("unknown job %q", name)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	}, &syncUC, &recordUC, &notifyUC)
}
