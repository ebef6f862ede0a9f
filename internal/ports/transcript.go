package ports

import (
	"context"
	"errors"
)

// ErrNoTranscript reports that no transcript exists for a video in the
// requested language. This is a normal skip outcome, not a failure.
var ErrNoTranscript = errors.New("no transcript available")

// TranscriptSegment is one timed line of a transcript. Start and Duration
// are seconds.
type TranscriptSegment struct {
	Start    float64
	Duration float64
	Text     string
}

// TranscriptSource fetches the ordered source-language transcript of a video.
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string, language string) ([]TranscriptSegment, error)
}

// Translator translates a text blob between two fixed language codes.
type Translator interface {
	Translate(ctx context.Context, text string, source string, target string) (string, error)
}
