package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap/logging"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/persistence/sqlite/repository"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/persistence/sqlite/uow"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/usecase/tracker"
)

func withApp(run func(cmd *cobra.Command, app *bootstrap.App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(
			cmd.Context(),
			slog.String("command", cmd.CommandPath()),
			slog.String("config_file", cfgFile),
		)
		cmd.SetContext(ctx)

		app, err := bootstrap.New(ctx, cfgFile)
		if err != nil {
			logging.Error(ctx, "bootstrap application failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "bootstrap application")
		}

		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.Close(closeCtx); err != nil {
				logging.Error(ctx, "application close failed", slog.Any("err", errs.Loggable(err)))
			}
		}()

		if err := run(cmd, app); err != nil {
			return errs.Wrap(err, "run command")
		}
		return nil
	}
}

// trackerDeps builds the persistence side of the tracker service. The
// network collaborators are attached per command; read-only commands leave
// them nil.
func trackerDeps(app *bootstrap.App) tracker.Deps {
	return tracker.Deps{
		Repo:       repository.NewIngestionRepository(app.DB),
		Watermarks: repository.NewWatermarkRepository(app.DB),
		UoW:        uow.NewUnitOfWork(app.DB),
	}
}

func trackerConfig(app *bootstrap.App) tracker.Config {
	return tracker.Config{
		PageSize:           app.Config.YouTube.PageSize,
		TranscriptLanguage: app.Config.Transcript.Language,
		TranslateSource:    app.Config.Translate.Source,
		TranslateTarget:    app.Config.Translate.Target,
		BatchSize:          app.Config.Translate.BatchSize,
		DefaultWindow:      time.Duration(app.Config.Tracker.DefaultWindowHours) * time.Hour,
		Policy:             tracker.WatermarkPolicy(app.Config.Tracker.WatermarkPolicy),
		Location:           app.Location,
	}
}
