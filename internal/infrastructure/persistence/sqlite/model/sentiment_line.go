package model

// SentimentLine is one per-segment sentiment row. References the parent
// transcript without cascade; records are never deleted.
type SentimentLine struct {
	ID           uint64      `gorm:"column:id;primaryKey;autoIncrement"`
	TranscriptID uint64      `gorm:"column:transcript_id;not null;index"`
	Transcript   *Transcript `gorm:"foreignKey:TranscriptID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Sentence     string      `gorm:"column:sentence;type:text;not null"`
	Sentiment    float64     `gorm:"column:sentiment;type:real;not null"`
	Timestamp    string      `gorm:"column:timestamp;type:text;not null"`
}

func (SentimentLine) TableName() string {
	return "sentiment_lines"
}
