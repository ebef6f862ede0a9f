package model

// Keyword is one distinct lowercase token of a transcript with its
// occurrence count.
type Keyword struct {
	ID           uint64      `gorm:"column:id;primaryKey;autoIncrement"`
	TranscriptID uint64      `gorm:"column:transcript_id;not null;index"`
	Transcript   *Transcript `gorm:"foreignKey:TranscriptID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Keyword      string      `gorm:"column:keyword;type:text;not null"`
	Count        int         `gorm:"column:count;not null"`
}

func (Keyword) TableName() string {
	return "keywords"
}
