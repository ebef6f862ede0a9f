package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

type fakeCatalog struct {
	playlistID   string
	uploadsErr   error
	items        []ports.PlaylistItem
	itemsErr     error
	durations    map[string]string
	durationErrs map[string]error
}

func (f *fakeCatalog) UploadsPlaylistID(_ context.Context, _ string) (string, error) {
	if f.uploadsErr != nil {
		return "", f.uploadsErr
	}
	return f.playlistID, nil
}

func (f *fakeCatalog) PlaylistItems(_ context.Context, _ string, _ int64) ([]ports.PlaylistItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items, nil
}

func (f *fakeCatalog) VideoDuration(_ context.Context, videoID string) (string, error) {
	if err := f.durationErrs[videoID]; err != nil {
		return "", err
	}
	if duration, ok := f.durations[videoID]; ok {
		return duration, nil
	}
	return "10:00", nil
}

type fakeTranscripts struct {
	segments map[string][]ports.TranscriptSegment
	errs     map[string]error
}

func (f *fakeTranscripts) Fetch(_ context.Context, videoID string, _ string) ([]ports.TranscriptSegment, error) {
	if err := f.errs[videoID]; err != nil {
		return nil, err
	}
	segments, ok := f.segments[videoID]
	if !ok {
		return nil, ports.ErrNoTranscript
	}
	return segments, nil
}

// fakeTranslator marks every line so tests can tell translated output from
// source text. failOnCall drops specific calls (1-based).
type fakeTranslator struct {
	calls      int
	failOnCall map[int]bool
}

func (f *fakeTranslator) Translate(_ context.Context, text string, _ string, _ string) (string, error) {
	f.calls++
	if f.failOnCall[f.calls] {
		return "", fmt.Errorf("translation call %d failed", f.calls)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "T:" + line
	}
	return strings.Join(lines, "\n"), nil
}

type memWatermarks struct {
	values map[string]time.Time
	getErr error
	setErr error
}

func newMemWatermarks() *memWatermarks {
	return &memWatermarks{values: make(map[string]time.Time)}
}

func (m *memWatermarks) Get(_ context.Context, channelName string) (time.Time, bool, error) {
	if m.getErr != nil {
		return time.Time{}, false, m.getErr
	}
	value, ok := m.values[channelName]
	return value, ok, nil
}

func (m *memWatermarks) Set(_ context.Context, channelName string, instant time.Time) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[channelName] = instant
	return nil
}

type memRepo struct {
	nextID     uint64
	records    []ports.TranscriptRecord
	sentiments map[uint64][]ports.SentimentLine
	keywords   map[uint64]map[string]int
	createErrs map[string]error
}

func newMemRepo() *memRepo {
	return &memRepo{
		sentiments: make(map[uint64][]ports.SentimentLine),
		keywords:   make(map[uint64]map[string]int),
		createErrs: make(map[string]error),
	}
}

func (r *memRepo) CreateTranscript(_ context.Context, record ports.TranscriptRecord) (uint64, error) {
	if err := r.createErrs[record.VideoLink]; err != nil {
		return 0, err
	}
	for _, existing := range r.records {
		if existing.VideoLink == record.VideoLink {
			return 0, ports.ErrDuplicateVideoLink
		}
	}

	r.nextID++
	record.ID = r.nextID
	r.records = append(r.records, record)
	return r.nextID, nil
}

func (r *memRepo) CreateSentimentLines(_ context.Context, transcriptID uint64, lines []ports.SentimentLine) error {
	r.sentiments[transcriptID] = append(r.sentiments[transcriptID], lines...)
	return nil
}

func (r *memRepo) CreateKeywords(_ context.Context, transcriptID uint64, counts map[string]int) error {
	r.keywords[transcriptID] = counts
	return nil
}

func (r *memRepo) ListTranscripts(_ context.Context, limit int) ([]ports.TranscriptRecord, error) {
	out := make([]ports.TranscriptRecord, len(r.records))
	copy(out, r.records)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) ListSentimentLines(_ context.Context, transcriptID uint64) ([]ports.SentimentLine, error) {
	return r.sentiments[transcriptID], nil
}

func (r *memRepo) TopKeywords(_ context.Context, transcriptID uint64, limit int) ([]ports.KeywordCount, error) {
	out := make([]ports.KeywordCount, 0, len(r.keywords[transcriptID]))
	for keyword, count := range r.keywords[transcriptID] {
		out = append(out, ports.KeywordCount{Keyword: keyword, Count: count})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// memUoW snapshots the in-memory repo and restores it when the callback
// fails, mirroring transactional rollback.
type memUoW struct {
	repo *memRepo
}

func (u *memUoW) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := u.snapshot()
	if err := fn(ctx); err != nil {
		*u.repo = snapshot
		return err
	}
	return nil
}

func (u *memUoW) snapshot() memRepo {
	records := make([]ports.TranscriptRecord, len(u.repo.records))
	copy(records, u.repo.records)

	sentiments := make(map[uint64][]ports.SentimentLine, len(u.repo.sentiments))
	for id, lines := range u.repo.sentiments {
		cloned := make([]ports.SentimentLine, len(lines))
		copy(cloned, lines)
		sentiments[id] = cloned
	}

	keywords := make(map[uint64]map[string]int, len(u.repo.keywords))
	for id, counts := range u.repo.keywords {
		cloned := make(map[string]int, len(counts))
		for keyword, count := range counts {
			cloned[keyword] = count
		}
		keywords[id] = cloned
	}

	return memRepo{
		nextID:     u.repo.nextID,
		records:    records,
		sentiments: sentiments,
		keywords:   keywords,
		createErrs: u.repo.createErrs,
	}
}
