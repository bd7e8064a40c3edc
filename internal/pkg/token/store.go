package token

import (
	"context"
	"time"

	"github.com/shelfmark/core/internal/models"
	"gorm.io/gorm"
)

type gormStore struct{ db *gorm.DB }

// NewStore returns the GORM-backed token store.
func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) Insert(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	row := models.AccessTokenModel{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *gormStore) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.AccessTokenModel{}).
		Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
