package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/infrastructure/persistence/sqlite/model"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

// WatermarkRepository stores per-channel watermarks as keyed upserts.
type WatermarkRepository struct {
	db *gorm.DB
}

var _ ports.WatermarkStore = (*WatermarkRepository)(nil)

func NewWatermarkRepository(db *gorm.DB) *WatermarkRepository {
	return &WatermarkRepository{db: db}
}

func (r *WatermarkRepository) Get(ctx context.Context, channelName string) (time.Time, bool, error) {
	if ctx == nil {
		return time.Time{}, false, errors.New("context is required")
	}

	name := strings.TrimSpace(channelName)
	if name == "" {
		return time.Time{}, false, errors.New("channel name is required")
	}

	var row model.Watermark
	if err := r.db.WithContext(ctx).Where("channel_name = ?", name).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, errs.Wrap(err, "query watermark")
	}

	return time.Unix(row.LastProcessedAt, 0).UTC(), true, nil
}

func (r *WatermarkRepository) Set(ctx context.Context, channelName string, instant time.Time) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	name := strings.TrimSpace(channelName)
	if name == "" {
		return errors.New("channel name is required")
	}

	row := model.Watermark{
		ChannelName:     name,
		LastProcessedAt: instant.Unix(),
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "channel_name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"last_processed_at": row.LastProcessedAt,
		}),
	}).Create(&row).Error; err != nil {
		return errs.Wrap(err, "upsert watermark")
	}

	return nil
}
