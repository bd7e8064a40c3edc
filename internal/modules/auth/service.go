package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shelfmark/core/internal/models"
	"github.com/shelfmark/core/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	tokens *token.Service
}

func NewService(db *gorm.DB, tokens *token.Service) *Service {
	return &Service{db: db, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{Email: dto.Email, Password: string(hash)}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index on email is the real arbiter.
		if isDuplicateEmail(err) {
			return nil, errEmailRegistered
		}
		return nil, err
	}
	return &u, nil
}

func isDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Login verifies credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	var u models.UserModel
	err := s.db.WithContext(ctx).Select("id, password").
		Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", errInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(3 * time.Second)
		return "", errInvalidCredentials
	}
	return s.tokens.Issue(ctx, u.ID)
}
