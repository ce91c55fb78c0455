package model

import (
	"gorm.io/datatypes"
)

// Design represents a generated design row.
// Code uses the json (not jsonb) column type so stored bytes come back unchanged.
type Design struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	UID         string         `gorm:"column:uid;uniqueIndex;not null;size:255"`
	UserEmail   string         `gorm:"column:user_email;index;not null;size:320"`
	Model       string         `gorm:"size:100;not null"`
	ImageURL    string         `gorm:"column:image_url;type:text;not null"`
	Description string         `gorm:"type:text"`
	Language    string         `gorm:"size:50"`
	Code        datatypes.JSON `gorm:"type:json;not null"`
	Options     datatypes.JSON `gorm:"type:json;not null;default:'[]'"`
	CreatedAt   string         `gorm:"column:created_at;size:100"`
}

// TableName specifies the table name for Design
func (Design) TableName() string {
	return "imagetocode"
}
