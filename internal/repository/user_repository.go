package repository

import (
	"farmer-assist/backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Ensure(userID, language, location string) (*models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Ensure returns the user row, creating it on first sight of the identifier
func (r *GormUserRepository) Ensure(userID, language, location string) (*models.User, error) {
	var user models.User
	err := r.db.Where("user_id = ?", userID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = models.User{
		UserID:   userID,
		Language: language,
		Location: location,
	}
	if user.Language == "" {
		user.Language = "en"
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
