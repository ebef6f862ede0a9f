package youtube

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// Client wraps the YouTube Data API v3 as a ports.VideoCatalog.
type Client struct {
	svc *yt.Service
}

var _ ports.VideoCatalog = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("api key is required")
	}

	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errs.Wrap(err, "create youtube service")
	}
	return &Client{svc: svc}, nil
}

func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return "", errs.Wrapf(err, "list channel %q", channelID)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel %q not found", channelID)
	}

	uploads := resp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("channel %q has no uploads playlist", channelID)
	}
	return uploads, nil
}

func (c *Client) PlaylistItems(ctx context.Context, playlistID string, pageSize int64) ([]ports.PlaylistItem, error) {
	resp, err := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errs.Wrapf(err, "list playlist %q items", playlistID)
	}

	items := make([]ports.PlaylistItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			return nil, errs.Wrapf(err, "parse publishedAt %q", item.Snippet.PublishedAt)
		}

		items = append(items, ports.PlaylistItem{
			VideoID:     item.Snippet.ResourceId.VideoId,
			Title:       item.Snippet.Title,
			PublishedAt: publishedAt.UTC(),
		})
	}
	return items, nil
}

func (c *Client) VideoDuration(ctx context.Context, videoID string) (string, error) {
	resp, err := c.svc.Videos.List([]string{"contentDetails"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return "", errs.Wrapf(err, "list video %q", videoID)
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil {
		return "", fmt.Errorf("%w: video %q", ports.ErrDurationUnknown, videoID)
	}

	formatted, ok := FormatISODuration(resp.Items[0].ContentDetails.Duration)
	if !ok {
		return "", fmt.Errorf("%w: video %q", ports.ErrDurationUnknown, videoID)
	}
	return formatted, nil
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatISODuration renders a PT#H#M#S duration with only its present
// components joined by colons, e.g. PT1H2M3S -> "1:2:3", PT5M -> "5".
// Returns false for empty or unrecognized input.
func FormatISODuration(iso string) (string, bool) {
	match := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(iso))
	if match == nil {
		return "", false
	}

	parts := make([]string, 0, 3)
	for _, component := range match[1:] {
		if component != "" {
			parts = append(parts, component)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ":"), true
}
