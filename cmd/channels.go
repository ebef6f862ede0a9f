package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/usecase/tracker"
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Print the configured channel list",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App) error {
		channelsFile, _ := cmd.Flags().GetString("channels")
		if channelsFile == "" {
			channelsFile = app.Config.Tracker.ChannelsFile
		}

		channels, err := tracker.LoadChannels(channelsFile)
		if err != nil {
			return errs.Wrap(err, "load channels")
		}

		for _, channel := range channels {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", channel.Name, channel.ID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d channels configured\n", len(channels))
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmd.Flags().String("channels", "", "Channel list file (overrides tracker.channels_file)")
}
