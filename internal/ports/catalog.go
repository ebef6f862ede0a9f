package ports

import (
	"context"
	"errors"
	"time"
)

// ErrDurationUnknown reports that the catalog has no resolvable duration for
// a video. Callers treat the video as permanently unavailable for the
// current window.
var ErrDurationUnknown = errors.New("video duration unknown")

// PlaylistItem is one entry of a channel's upload listing, in source order.
type PlaylistItem struct {
	VideoID     string
	Title       string
	PublishedAt time.Time
}

// VideoCatalog is the raw video-catalog collaborator. Implementations wrap
// the external service; they hold no scheduling state.
type VideoCatalog interface {
	// UploadsPlaylistID resolves the channel's canonical upload listing.
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	// PlaylistItems lists the most recent entries of a playlist, bounded by
	// pageSize.
	PlaylistItems(ctx context.Context, playlistID string, pageSize int64) ([]PlaylistItem, error)
	// VideoDuration resolves a formatted duration ("H:M:S") for a video,
	// or ErrDurationUnknown.
	VideoDuration(ctx context.Context, videoID string) (string, error)
}
