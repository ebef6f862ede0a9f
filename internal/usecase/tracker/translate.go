package tracker

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/bootstrap/logging"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// translateTranscript fetches the source-language transcript and translates
// it batch by batch. A failed batch is dropped and processing continues; a
// partial transcript is an accepted degraded outcome. The second return is
// the space-joined full text in chronological order. ok is false when the
// video has no usable transcript and should be skipped.
func (s *Service) translateTranscript(ctx context.Context, videoID string) ([]ports.TranscriptSegment, string, bool) {
	source, err := s.transcripts.Fetch(ctx, videoID, s.cfg.TranscriptLanguage)
	if err != nil {
		// Any fetch failure is a skip outcome, matching the collaborator's
		// "unavailable" semantics.
		logging.Warn(ctx, "transcript unavailable",
			slog.String("video_id", videoID),
			slog.String("language", s.cfg.TranscriptLanguage),
			slog.String("reason", err.Error()),
		)
		return nil, "", false
	}

	translated := make([]ports.TranscriptSegment, 0, len(source))
	fullParts := make([]string, 0, len(source))

	for start := 0; start < len(source); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(source) {
			end = len(source)
		}
		batch := source[start:end]

		texts := make([]string, 0, len(batch))
		for _, segment := range batch {
			texts = append(texts, segment.Text)
		}

		translatedText, err := s.translator.Translate(ctx, strings.Join(texts, "\n"), s.cfg.TranslateSource, s.cfg.TranslateTarget)
		if err != nil {
			logging.Warn(ctx, "translation batch failed, dropping batch",
				slog.String("video_id", videoID),
				slog.Int("batch_start", start),
				slog.Int("batch_len", len(batch)),
				slog.String("reason", err.Error()),
			)
			continue
		}

		lines := strings.Split(translatedText, "\n")
		// Trailing source segments without a translated line are dropped.
		for i, segment := range batch {
			if i >= len(lines) {
				break
			}
			translated = append(translated, ports.TranscriptSegment{
				Start:    segment.Start,
				Duration: segment.Duration,
				Text:     lines[i],
			})
			fullParts = append(fullParts, lines[i])
		}
	}

	if len(translated) == 0 {
		logging.Warn(ctx, "no segments survived translation", slog.String("video_id", videoID))
		return nil, "", false
	}

	return translated, strings.Join(fullParts, " "), true
}
