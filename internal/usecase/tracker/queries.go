package tracker

import (
	"context"
	"errors"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// TranscriptDetail is the read-side view of one ingestion record with its
// derived analytics.
type TranscriptDetail struct {
	Record     ports.TranscriptRecord
	Sentiments []ports.SentimentLine
	Keywords   []ports.KeywordCount
}

// RecentTranscripts lists the newest ingestion records, newest first.
func (s *Service) RecentTranscripts(ctx context.Context, limit int) ([]ports.TranscriptRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if s.repo == nil {
		return nil, errors.New("ingestion repository is required")
	}

	records, err := s.repo.ListTranscripts(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "list transcripts")
	}
	return records, nil
}

// TranscriptDetailByRecord loads sentiment lines and top keywords for one
// already-listed record.
func (s *Service) TranscriptDetailByRecord(ctx context.Context, record ports.TranscriptRecord, keywordLimit int) (TranscriptDetail, error) {
	if ctx == nil {
		return TranscriptDetail{}, errors.New("context is required")
	}
	if s.repo == nil {
		return TranscriptDetail{}, errors.New("ingestion repository is required")
	}

	sentiments, err := s.repo.ListSentimentLines(ctx, record.ID)
	if err != nil {
		return TranscriptDetail{}, errs.Wrap(err, "list sentiment lines")
	}

	keywords, err := s.repo.TopKeywords(ctx, record.ID, keywordLimit)
	if err != nil {
		return TranscriptDetail{}, errs.Wrap(err, "list top keywords")
	}

	return TranscriptDetail{
		Record:     record,
		Sentiments: sentiments,
		Keywords:   keywords,
	}, nil
}
