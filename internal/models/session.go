package models

import (
	"time"
)

// Session groups the chat turns of one ongoing conversation
type Session struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	SessionID    string    `json:"session_id" gorm:"uniqueIndex;size:100"`
	UserID       string    `json:"user_id" gorm:"index;size:50"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}
