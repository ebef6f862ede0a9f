package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap/logging"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/domain/ingest"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// ChannelRunResult summarizes one channel run attempt.
type ChannelRunResult struct {
	Channel    string
	Window     ingest.Window
	Candidates int
	Ingested   int
	Skipped    int
	Duplicates int
	Failed     int
	ScanErr    error
}

// ProcessAll runs every channel sequentially. One channel's failure never
// aborts the others; per-channel outcomes are collected in the results.
// The returned error is non-nil only when the context is canceled or the
// watermark storage becomes unusable.
func (s *Service) ProcessAll(ctx context.Context, channels []ingest.Channel) ([]ChannelRunResult, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	results := make([]ChannelRunResult, 0, len(channels))
	for _, channel := range channels {
		if err := ctx.Err(); err != nil {
			return results, errs.Wrap(err, "check context")
		}

		result, err := s.ProcessChannel(ctx, channel)
		results = append(results, result)
		if err != nil && result.ScanErr == nil {
			// Watermark storage failures are fatal for the whole run.
			return results, err
		}
	}
	return results, nil
}

// ProcessChannel runs the full pipeline for one channel: compute the window
// from the watermark, scan for candidates, translate and persist each one,
// then advance the watermark per the configured policy. Per-video failures
// are isolated; only watermark storage errors are returned alongside scan
// errors.
func (s *Service) ProcessChannel(ctx context.Context, channel ingest.Channel) (ChannelRunResult, error) {
	if ctx == nil {
		return ChannelRunResult{}, errors.New("context is required")
	}
	if s.repo == nil || s.watermarks == nil || s.uow == nil {
		return ChannelRunResult{}, errors.New("persistence collaborators are required")
	}
	if s.catalog == nil || s.transcripts == nil || s.translator == nil {
		return ChannelRunResult{}, errors.New("catalog, transcript and translator collaborators are required")
	}

	ctx = logging.WithAttrs(ctx, slog.String("channel", channel.Name))
	// Captured once; the window end and the advanced watermark must agree.
	now := s.now().UTC()

	watermark, found, err := s.watermarks.Get(ctx, channel.Name)
	if err != nil {
		return ChannelRunResult{Channel: channel.Name}, errs.Wrap(err, "read watermark")
	}

	var window ingest.Window
	if found {
		window = ingest.ComputeWindow(&watermark, now, s.cfg.DefaultWindow)
	} else {
		logging.Info(ctx, "no watermark, using default window", slog.Duration("window", s.cfg.DefaultWindow))
		window = ingest.ComputeWindow(nil, now, s.cfg.DefaultWindow)
	}

	result := ChannelRunResult{Channel: channel.Name, Window: window}
	logging.Info(ctx, "processing channel",
		slog.Time("window_start", window.Start),
		slog.Time("window_end", window.End),
	)
	fmt.Fprintf(s.cfg.Progress, "processing channel %s (window %s)\n", channel.Name, window.Duration().Round(time.Second))

	candidates, scanErr := s.scanChannel(ctx, channel.ID, window)
	if scanErr != nil {
		logging.Error(ctx, "channel scan failed", slog.Any("err", errs.Loggable(scanErr)))
		result.ScanErr = scanErr
		if err := s.advanceWatermark(ctx, channel.Name, now, &result); err != nil {
			return result, err
		}
		return result, scanErr
	}

	result.Candidates = len(candidates)
	logging.Info(ctx, "scan completed", slog.Int("candidates", len(candidates)))
	fmt.Fprintf(s.cfg.Progress, "found %d videos for channel %s\n", len(candidates), channel.Name)

	for _, candidate := range candidates {
		s.processVideo(ctx, channel.Name, candidate, &result)
	}

	if err := s.advanceWatermark(ctx, channel.Name, now, &result); err != nil {
		return result, err
	}

	logging.Info(ctx, "channel run completed",
		slog.Int("ingested", result.Ingested),
		slog.Int("skipped", result.Skipped),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

// processVideo isolates one video's outcome: translation skips, duplicate
// links and persistence errors never abort the channel loop.
func (s *Service) processVideo(ctx context.Context, channelName string, candidate VideoCandidate, result *ChannelRunResult) {
	ctx = logging.WithAttrs(ctx, slog.String("video_id", candidate.VideoID))
	fmt.Fprintf(s.cfg.Progress, "translating: %s\n", candidate.Title)

	segments, fullText, ok := s.translateTranscript(ctx, candidate.VideoID)
	if !ok {
		result.Skipped++
		fmt.Fprintf(s.cfg.Progress, "skipped (no transcript): %s\n", candidate.Title)
		return
	}

	transcriptID, err := s.persistVideo(ctx, channelName, candidate, segments, fullText)
	switch {
	case errors.Is(err, ports.ErrDuplicateVideoLink):
		result.Duplicates++
		logging.Warn(ctx, "duplicate video link, nothing written", slog.String("link", candidate.Link))
		fmt.Fprintf(s.cfg.Progress, "skipped duplicate: %s\n", candidate.Link)
	case err != nil:
		result.Failed++
		logging.Error(ctx, "persist video failed", slog.Any("err", errs.Loggable(err)))
		fmt.Fprintf(s.cfg.Progress, "error persisting: %s\n", candidate.Title)
	default:
		result.Ingested++
		logging.Info(ctx, "video ingested",
			slog.Uint64("transcript_id", transcriptID),
			slog.Int("segments", len(segments)),
		)
		fmt.Fprintf(s.cfg.Progress, "processed: %s\n", candidate.Title)
	}
}

// advanceWatermark applies the configured policy. Under WatermarkAlways the
// watermark moves to the captured now even after failures; under
// WatermarkOnFailuresHold it stays put when the scan failed or a video hit a
// non-duplicate persistence error.
func (s *Service) advanceWatermark(ctx context.Context, channelName string, now time.Time, result *ChannelRunResult) error {
	if s.cfg.Policy == WatermarkOnFailuresHold && (result.ScanErr != nil || result.Failed > 0) {
		logging.Warn(ctx, "holding watermark after failures",
			slog.Int("failed", result.Failed),
			slog.Bool("scan_failed", result.ScanErr != nil),
		)
		return nil
	}

	if err := s.watermarks.Set(ctx, channelName, now); err != nil {
		logging.Error(ctx, "advance watermark failed", slog.Any("err", errs.Loggable(err)))
		return errs.Wrap(err, "advance watermark")
	}
	return nil
}
