package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap/logging"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/transcript"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/translate"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/youtube"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/usecase/tracker"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process all configured channels once",
	Long:  "Scans every configured channel for videos published since its watermark, translates their transcripts, derives analytics and persists the results. Per-channel and per-video failures are logged and skipped; the command exits zero regardless.",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App) error {
		ctx := cmd.Context()
		logging.Info(ctx, "start run")

		// Schema init failure is the only fatal-to-process outcome.
		if err := app.InitSchema(ctx); err != nil {
			return errs.Wrap(err, "initialize schema")
		}

		channelsFile, _ := cmd.Flags().GetString("channels")
		if channelsFile == "" {
			channelsFile = app.Config.Tracker.ChannelsFile
		}
		channels, err := tracker.LoadChannels(channelsFile)
		if err != nil {
			return errs.Wrap(err, "load channels")
		}

		catalog, err := youtube.NewClient(ctx, app.Config.YouTube.APIKey)
		if err != nil {
			return errs.Wrap(err, "create catalog client")
		}

		deps := trackerDeps(app)
		deps.Catalog = catalog
		deps.Transcripts = transcript.NewClient()
		deps.Translator = translate.NewClient()

		cfg := trackerConfig(app)
		cfg.Progress = cmd.OutOrStdout()

		svc := tracker.NewService(deps, cfg)
		results, err := svc.ProcessAll(ctx, channels)
		for _, result := range results {
			if result.ScanErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "channel %s: scan failed: %v\n", result.Channel, result.ScanErr)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "channel %s: %d candidates, %d ingested, %d skipped, %d duplicates, %d failed\n",
				result.Channel, result.Candidates, result.Ingested, result.Skipped, result.Duplicates, result.Failed)
		}
		if err != nil {
			return errs.Wrap(err, "process channels")
		}

		logging.Info(ctx, "run finished", slog.Int("channels", len(results)))
		fmt.Fprintln(cmd.OutOrStdout(), "all channels processed")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("channels", "", "Channel list file (overrides tracker.channels_file)")
}
