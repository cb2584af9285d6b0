package models

import (
	"time"
)

// Message senders
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage represents a single chat turn. Rows are immutable
// once stored; history reads and exports never mutate them.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"index;size:100"`
	Sender    string    `json:"sender" gorm:"size:20"`
	Text      string    `json:"text" gorm:"type:text"`
	Language  string    `json:"language" gorm:"size:10"`
	Intent    string    `json:"intent" gorm:"size:20"`
	ImageRef  string    `json:"image_ref,omitempty" gorm:"size:255"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}
