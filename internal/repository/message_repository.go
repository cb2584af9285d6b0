package repository

import (
	"farmer-assist/backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.ChatMessage) error
	GetBySession(sessionID string) ([]models.ChatMessage, error)
	GetBySessionPaginated(sessionID string, limit, offset int) ([]models.ChatMessage, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *GormMessageRepository) GetBySession(sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) GetBySessionPaginated(sessionID string, limit, offset int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}
