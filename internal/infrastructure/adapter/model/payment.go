package model

import (
	"time"
)

// Payment represents a gateway order and its verification outcome
type Payment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID   string    `gorm:"uniqueIndex;not null;size:64"`
	PaymentID *string   `gorm:"uniqueIndex;size:64"`
	UserEmail string    `gorm:"index;not null;size:320"`
	PackageID string    `gorm:"not null;size:64"`
	Amount    int64     `gorm:"not null"` // minor units
	Currency  string    `gorm:"not null;size:8"`
	Credits   int64     `gorm:"not null"`
	Status    string    `gorm:"not null;size:20;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
