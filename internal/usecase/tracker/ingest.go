package tracker

import (
	"context"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/domain/ingest"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// persistVideo derives analytics and writes the transcript record plus its
// sentiment and keyword children in one transaction. On any failure the
// transaction rolls back and nothing is written, including on a duplicate
// video link (ports.ErrDuplicateVideoLink).
func (s *Service) persistVideo(ctx context.Context, channelName string, candidate VideoCandidate, segments []ports.TranscriptSegment, fullText string) (uint64, error) {
	wallClock := s.now().In(s.cfg.Location)

	record := ports.TranscriptRecord{
		ChannelName:   channelName,
		Day:           wallClock.Weekday().String(),
		Date:          wallClock.Format("2006-01-02"),
		Time:          wallClock.Format("15:04:05"),
		Transcription: fullText,
		VideoTitle:    candidate.Title,
		VideoLink:     candidate.Link,
		VideoDuration: candidate.Duration,
	}

	lines := make([]ports.SentimentLine, 0, len(segments))
	for _, segment := range segments {
		lines = append(lines, ports.SentimentLine{
			Sentence:  segment.Text,
			Sentiment: ingest.SentimentScore(segment.Text),
			Timestamp: ingest.SegmentTimestamp(segment.Start),
		})
	}

	var transcriptID uint64
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		id, err := s.repo.CreateTranscript(txCtx, record)
		if err != nil {
			return err
		}
		if err := s.repo.CreateSentimentLines(txCtx, id, lines); err != nil {
			return errs.Wrap(err, "persist sentiment lines")
		}
		if err := s.repo.CreateKeywords(txCtx, id, ingest.KeywordCounts(fullText)); err != nil {
			return errs.Wrap(err, "persist keywords")
		}
		transcriptID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	return transcriptID, nil
}
