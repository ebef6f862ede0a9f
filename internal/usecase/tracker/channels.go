package tracker

import (
	"os"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/domain/ingest"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
)

// LoadChannels reads the channel list file ("name,channel_id" per line).
func LoadChannels(path string) ([]ingest.Channel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open channels file %q", path)
	}
	defer file.Close()

	channels, err := ingest.ParseChannels(file)
	if err != nil {
		return nil, errs.Wrapf(err, "parse channels file %q", path)
	}
	return channels, nil
}
