package ports

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateVideoLink reports a video link already ingested in a prior run
// or an overlapping window. The link uniqueness constraint is the sole
// de-duplication mechanism.
var ErrDuplicateVideoLink = errors.New("duplicate video link")

// TranscriptRecord is the durable row for one successfully translated video.
type TranscriptRecord struct {
	ID            uint64
	ChannelName   string
	Day           string
	Date          string
	Time          string
	Transcription string
	VideoTitle    string
	VideoLink     string
	VideoDuration string
}

// SentimentLine is one per-segment sentiment row of a transcript record.
type SentimentLine struct {
	ID           uint64
	TranscriptID uint64
	Sentence     string
	Sentiment    float64
	Timestamp    string
}

// KeywordCount is one keyword row read back for a transcript.
type KeywordCount struct {
	Keyword string
	Count   int
}

// IngestionRepository persists transcript records and their derived
// analytics. Writes respect a transaction handle carried in context.
type IngestionRepository interface {
	// CreateTranscript inserts the parent row and returns its id, or
	// ErrDuplicateVideoLink when the video link is already present.
	CreateTranscript(ctx context.Context, record TranscriptRecord) (uint64, error)
	CreateSentimentLines(ctx context.Context, transcriptID uint64, lines []SentimentLine) error
	CreateKeywords(ctx context.Context, transcriptID uint64, counts map[string]int) error

	ListTranscripts(ctx context.Context, limit int) ([]TranscriptRecord, error)
	ListSentimentLines(ctx context.Context, transcriptID uint64) ([]SentimentLine, error)
	TopKeywords(ctx context.Context, transcriptID uint64, limit int) ([]KeywordCount, error)
}

// WatermarkStore is the per-channel "last processed" instant. Single writer;
// last-writer-wins upsert.
type WatermarkStore interface {
	Get(ctx context.Context, channelName string) (time.Time, bool, error)
	Set(ctx context.Context, channelName string, instant time.Time) error
}
