package model

import (
	"time"
)

// User represents the database model for credit accounts
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255"`
	Email     string    `gorm:"uniqueIndex;not null;size:320"`
	Credits   int64     `gorm:"not null;default:0;check:credits_non_negative,credits >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
