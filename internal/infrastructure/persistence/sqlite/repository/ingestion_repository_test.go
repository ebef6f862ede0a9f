package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/persistence/sqlite/model"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/persistence/sqlite/uow"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "yt_transcripts.db")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(&model.Transcript{}, &model.SentimentLine{}, &model.Keyword{}, &model.Watermark{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func sampleRecord(link string) ports.TranscriptRecord {
	return ports.TranscriptRecord{
		ChannelName:   "Geo News",
		Day:           "Friday",
		Date:          "2026-03-13",
		Time:          "21:15:04",
		Transcription: "breaking news tonight",
		VideoTitle:    "Headlines 9 PM",
		VideoLink:     link,
		VideoDuration: "12:41",
	}
}

func TestCreateTranscriptRejectsDuplicateLink(t *testing.T) {
	db := setupDB(t)
	repo := NewIngestionRepository(db)
	ctx := context.Background()

	first, err := repo.CreateTranscript(ctx, sampleRecord("https://www.youtube.com/watch?v=abc123"))
	if err != nil {
		t.Fatalf("CreateTranscript() error = %v", err)
	}
	if first == 0 {
		t.Fatal("CreateTranscript() id = 0")
	}

	_, err = repo.CreateTranscript(ctx, sampleRecord("https://www.youtube.com/watch?v=abc123"))
	if !errors.Is(err, ports.ErrDuplicateVideoLink) {
		t.Fatalf("CreateTranscript() error = %v, want ErrDuplicateVideoLink", err)
	}

	var count int64
	if err := db.Model(&model.Transcript{}).Count(&count).Error; err != nil {
		t.Fatalf("count transcripts: %v", err)
	}
	if count != 1 {
		t.Fatalf("transcript count = %d, want 1", count)
	}
}

func TestDuplicateInsideTransactionLeavesNoChildren(t *testing.T) {
	db := setupDB(t)
	repo := NewIngestionRepository(db)
	unit := uow.NewUnitOfWork(db)
	ctx := context.Background()

	link := "https://www.youtube.com/watch?v=dup456"
	if _, err := repo.CreateTranscript(ctx, sampleRecord(link)); err != nil {
		t.Fatalf("seed transcript: %v", err)
	}

	err := unit.WithTx(ctx, func(txCtx context.Context) error {
		id, err := repo.CreateTranscript(txCtx, sampleRecord(link))
		if err != nil {
			return err
		}
		return repo.CreateSentimentLines(txCtx, id, []ports.SentimentLine{{Sentence: "x", Timestamp: "00:00"}})
	})
	if !errors.Is(err, ports.ErrDuplicateVideoLink) {
		t.Fatalf("WithTx() error = %v, want ErrDuplicateVideoLink", err)
	}

	var sentiments int64
	if err := db.Model(&model.SentimentLine{}).Count(&sentiments).Error; err != nil {
		t.Fatalf("count sentiment lines: %v", err)
	}
	if sentiments != 0 {
		t.Fatalf("sentiment line count = %d, want 0 after rollback", sentiments)
	}
}

func TestChildFailureRollsBackParent(t *testing.T) {
	db := setupDB(t)
	repo := NewIngestionRepository(db)
	unit := uow.NewUnitOfWork(db)
	ctx := context.Background()

	childErr := errors.New("keyword insert exploded")
	err := unit.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := repo.CreateTranscript(txCtx, sampleRecord("https://www.youtube.com/watch?v=roll789")); err != nil {
			return err
		}
		return childErr
	})
	if !errors.Is(err, childErr) {
		t.Fatalf("WithTx() error = %v, want child error", err)
	}

	var count int64
	if err := db.Model(&model.Transcript{}).Count(&count).Error; err != nil {
		t.Fatalf("count transcripts: %v", err)
	}
	if count != 0 {
		t.Fatalf("transcript count = %d, want 0 after rollback", count)
	}
}

func TestChildTablesReferenceTranscripts(t *testing.T) {
	db := setupDB(t)

	for _, table := range []string{"sentiment_lines", "keywords"} {
		var refs []struct {
			Table string `gorm:"column:table"`
			From  string `gorm:"column:from"`
			To    string `gorm:"column:to"`
		}
		if err := db.Raw("PRAGMA foreign_key_list(" + table + ")").Scan(&refs).Error; err != nil {
			t.Fatalf("foreign_key_list(%s): %v", table, err)
		}
		if len(refs) != 1 {
			t.Fatalf("foreign keys on %s = %d, want 1", table, len(refs))
		}
		if refs[0].Table != "transcripts" || refs[0].From != "transcript_id" || refs[0].To != "id" {
			t.Fatalf("foreign key on %s = %+v, want transcript_id -> transcripts.id", table, refs[0])
		}
	}
}

func TestFullIngestAndReadBack(t *testing.T) {
	db := setupDB(t)
	repo := NewIngestionRepository(db)
	unit := uow.NewUnitOfWork(db)
	ctx := context.Background()

	var transcriptID uint64
	err := unit.WithTx(ctx, func(txCtx context.Context) error {
		id, err := repo.CreateTranscript(txCtx, sampleRecord("https://www.youtube.com/watch?v=full001"))
		if err != nil {
			return err
		}
		transcriptID = id

		if err := repo.CreateSentimentLines(txCtx, id, []ports.SentimentLine{
			{Sentence: "good evening", Sentiment: 3, Timestamp: "00:00"},
			{Sentence: "terrible storm", Sentiment: -3, Timestamp: "00:05"},
		}); err != nil {
			return err
		}
		return repo.CreateKeywords(txCtx, id, map[string]int{"news": 3, "storm": 1, "weather": 2})
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	records, err := repo.ListTranscripts(ctx, 10)
	if err != nil {
		t.Fatalf("ListTranscripts() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != transcriptID {
		t.Fatalf("ListTranscripts() = %+v", records)
	}

	lines, err := repo.ListSentimentLines(ctx, transcriptID)
	if err != nil {
		t.Fatalf("ListSentimentLines() error = %v", err)
	}
	if len(lines) != 2 || lines[0].Sentence != "good evening" || lines[1].Timestamp != "00:05" {
		t.Fatalf("ListSentimentLines() = %+v", lines)
	}

	keywords, err := repo.TopKeywords(ctx, transcriptID, 2)
	if err != nil {
		t.Fatalf("TopKeywords() error = %v", err)
	}
	if len(keywords) != 2 {
		t.Fatalf("TopKeywords() len = %d", len(keywords))
	}
	if keywords[0].Keyword != "news" || keywords[0].Count != 3 {
		t.Fatalf("TopKeywords()[0] = %+v", keywords[0])
	}
	if keywords[1].Keyword != "weather" || keywords[1].Count != 2 {
		t.Fatalf("TopKeywords()[1] = %+v", keywords[1])
	}
}
