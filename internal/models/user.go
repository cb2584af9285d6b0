package models

import (
	"time"
)

// User represents a farmer interacting with the assistant.
// Users are created lazily the first time an identifier appears
// in a chat request; there is no signup flow.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;size:50"`
	Language  string    `json:"language" gorm:"size:10;default:en"`
	Location  string    `json:"location" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}
