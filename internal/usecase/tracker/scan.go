package tracker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap/logging"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/domain/ingest"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

const watchLinkPrefix = "https://www.youtube.com/watch?v="

// VideoCandidate is one scan result: a video published inside the window
// with a resolved duration. Ordering follows the catalog listing, not
// publish time.
type VideoCandidate struct {
	VideoID  string
	Title    string
	Duration string
	Link     string
}

// scanChannel lists the channel's uploads and keeps items inside the
// half-open window. Videos without a resolvable duration are logged and
// excluded; any collaborator error aborts the scan for this channel.
func (s *Service) scanChannel(ctx context.Context, channelID string, window ingest.Window) ([]VideoCandidate, error) {
	playlistID, err := s.catalog.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, errs.Wrap(err, "resolve uploads playlist")
	}

	items, err := s.catalog.PlaylistItems(ctx, playlistID, s.cfg.PageSize)
	if err != nil {
		return nil, errs.Wrap(err, "list playlist items")
	}

	candidates := make([]VideoCandidate, 0, len(items))
	for _, item := range items {
		if !window.Contains(item.PublishedAt) {
			continue
		}

		duration, err := s.catalog.VideoDuration(ctx, item.VideoID)
		if err != nil {
			if errors.Is(err, ports.ErrDurationUnknown) {
				logging.Warn(ctx, "skipping video with unknown duration",
					slog.String("video_id", item.VideoID),
					slog.String("title", item.Title),
				)
				continue
			}
			return nil, errs.Wrapf(err, "resolve duration for video %q", item.VideoID)
		}

		candidates = append(candidates, VideoCandidate{
			VideoID:  item.VideoID,
			Title:    item.Title,
			Duration: duration,
			Link:     watchLinkPrefix + item.VideoID,
		})
	}

	return candidates, nil
}
