package model

// Transcript is one ingested video. The unique index on video_link is the
// idempotency key across runs and overlapping windows.
type Transcript struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ChannelName   string `gorm:"column:channel_name;type:text;not null"`
	Day           string `gorm:"column:day;type:text;not null"`
	Date          string `gorm:"column:date;type:text;not null"`
	Time          string `gorm:"column:time;type:text;not null"`
	Transcription string `gorm:"column:transcription;type:text;not null"`
	VideoTitle    string `gorm:"column:video_title;type:text;not null"`
	VideoLink     string `gorm:"column:video_link;type:text;not null;uniqueIndex"`
	VideoDuration string `gorm:"column:video_duration;type:text;not null"`
}

func (Transcript) TableName() string {
	return "transcripts"
}
