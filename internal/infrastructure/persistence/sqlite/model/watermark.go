package model

// Watermark holds the last-attempted-through instant per channel, as unix
// seconds. One row per channel, upserted after every run attempt.
type Watermark struct {
	ChannelName     string `gorm:"column:channel_name;type:text;primaryKey"`
	LastProcessedAt int64  `gorm:"column:last_processed_at;not null"`
}

func (Watermark) TableName() string {
	return "watermarks"
}
