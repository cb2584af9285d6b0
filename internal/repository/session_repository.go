package repository

import (
	"time"

	"farmer-assist/backend/internal/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Ensure(sessionID, userID string) (*models.Session, error)
	GetBySessionID(sessionID string) (*models.Session, error)
	Touch(sessionID string) error
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Ensure returns the session row, creating it on first interaction.
// Session existence precedes any message referencing it.
func (r *GormSessionRepository) Ensure(sessionID, userID string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("session_id = ?", sessionID).First(&session).Error
	if err == nil {
		return &session, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	session = models.Session{
		SessionID:    sessionID,
		UserID:       userID,
		LastActivity: time.Now(),
	}
	if err := r.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *GormSessionRepository) GetBySessionID(sessionID string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *GormSessionRepository) Touch(sessionID string) error {
	return r.db.Model(&models.Session{}).
		Where("session_id = ?", sessionID).
		Update("last_activity", time.Now()).Error
}
