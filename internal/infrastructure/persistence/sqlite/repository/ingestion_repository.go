package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/persistence/sqlite/model"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

type IngestionRepository struct {
	db *gorm.DB
}

var _ ports.IngestionRepository = (*IngestionRepository)(nil)

func NewIngestionRepository(db *gorm.DB) *IngestionRepository {
	return &IngestionRepository{db: db}
}

func (r *IngestionRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *IngestionRepository) CreateTranscript(ctx context.Context, record ports.TranscriptRecord) (uint64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return 0, err
	}

	row := model.Transcript{
		ChannelName:   record.ChannelName,
		Day:           record.Day,
		Date:          record.Date,
		Time:          record.Time,
		Transcription: record.Transcription,
		VideoTitle:    record.VideoTitle,
		VideoLink:     record.VideoLink,
		VideoDuration: record.VideoDuration,
	}

	if err := db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ports.ErrDuplicateVideoLink, record.VideoLink)
		}
		return 0, errs.Wrap(err, "insert transcript")
	}
	return row.ID, nil
}

func (r *IngestionRepository) CreateSentimentLines(ctx context.Context, transcriptID uint64, lines []ports.SentimentLine) error {
	if len(lines) == 0 {
		return nil
	}

	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	rows := make([]model.SentimentLine, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, model.SentimentLine{
			TranscriptID: transcriptID,
			Sentence:     line.Sentence,
			Sentiment:    line.Sentiment,
			Timestamp:    line.Timestamp,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		return errs.Wrap(err, "insert sentiment lines")
	}
	return nil
}

func (r *IngestionRepository) CreateKeywords(ctx context.Context, transcriptID uint64, counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}

	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	// Map iteration order is undefined; sort so inserts are reproducible.
	keywords := make([]string, 0, len(counts))
	for keyword := range counts {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	rows := make([]model.Keyword, 0, len(keywords))
	for _, keyword := range keywords {
		rows = append(rows, model.Keyword{
			TranscriptID: transcriptID,
			Keyword:      keyword,
			Count:        counts[keyword],
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		return errs.Wrap(err, "insert keywords")
	}
	return nil
}

func (r *IngestionRepository) ListTranscripts(ctx context.Context, limit int) ([]ports.TranscriptRecord, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Transcript{}).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.Transcript
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query transcripts")
	}

	items := make([]ports.TranscriptRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapTranscript(row))
	}
	return items, nil
}

func (r *IngestionRepository) ListSentimentLines(ctx context.Context, transcriptID uint64) ([]ports.SentimentLine, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.SentimentLine
	if err := db.
		Where("transcript_id = ?", transcriptID).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query sentiment lines")
	}

	items := make([]ports.SentimentLine, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.SentimentLine{
			ID:           row.ID,
			TranscriptID: row.TranscriptID,
			Sentence:     row.Sentence,
			Sentiment:    row.Sentiment,
			Timestamp:    row.Timestamp,
		})
	}
	return items, nil
}

func (r *IngestionRepository) TopKeywords(ctx context.Context, transcriptID uint64, limit int) ([]ports.KeywordCount, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Keyword{}).
		Where("transcript_id = ?", transcriptID).
		Order("count desc, keyword asc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.Keyword
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query keywords")
	}

	items := make([]ports.KeywordCount, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.KeywordCount{Keyword: row.Keyword, Count: row.Count})
	}
	return items, nil
}

func mapTranscript(row model.Transcript) ports.TranscriptRecord {
	return ports.TranscriptRecord{
		ID:            row.ID,
		ChannelName:   row.ChannelName,
		Day:           row.Day,
		Date:          row.Date,
		Time:          row.Time,
		Transcription: row.Transcription,
		VideoTitle:    row.VideoTitle,
		VideoLink:     row.VideoLink,
		VideoDuration: row.VideoDuration,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
