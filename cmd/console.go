package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/usecase/console"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/usecase/tracker"
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Browse ingested transcripts interactively",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App) error {
		ctx := cmd.Context()

		limit, _ := cmd.Flags().GetInt("limit")
		keywords, _ := cmd.Flags().GetInt("keywords")

		svc := tracker.NewService(trackerDeps(app), trackerConfig(app))
		model := console.NewBrowserModel(ctx, svc, console.Options{
			Limit:        limit,
			KeywordLimit: keywords,
		})

		program := tea.NewProgram(model, tea.WithContext(ctx))
		if _, err := program.Run(); err != nil {
			return errs.Wrap(err, "run console")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	consoleCmd.Flags().Int("limit", 50, "Number of recent transcripts to list")
	consoleCmd.Flags().Int("keywords", 10, "Number of top keywords to show per transcript")
}
