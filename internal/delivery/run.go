package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Group is the fx value group every Delivery constructor is annotated into.
const Group = `group:"deliveries"`

// RunParams collects the deliveries of one process.
type RunParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Provide annotates a Delivery constructor into Group.
func Provide(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(Group)))
}

// Run starts every delivery once the app has started. The first delivery that
// fails brings the whole process down so OnStop hooks still run.
func Run(params RunParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go serve(ctx, d, params)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func serve(ctx context.Context, d Delivery, params RunParams) {
	err := d.Serve(ctx)
	if err == nil {
		return
	}

	params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))
	if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
		params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
		os.Exit(1)
	}
}

// FxLogger routes fx's own lifecycle events through the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
	l.UseLogLevel(slog.LevelDebug)

	return l
}
