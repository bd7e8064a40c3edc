package review

import (
	"context"
	"errors"

	"github.com/shelfmark/core/internal/models"
	"gorm.io/gorm"
)

// store is the slice of persistence the service needs; the GORM
// implementation lives below, tests swap in a fake.
type store interface {
	bookExists(ctx context.Context, bookID uint) (bool, error)
	create(ctx context.Context, r *models.ReviewModel) error
	listByBook(ctx context.Context, bookID uint) ([]models.ReviewModel, error)
	// byID returns (nil, nil) when the review does not exist.
	byID(ctx context.Context, id uint) (*models.ReviewModel, error)
	delete(ctx context.Context, id uint) error
}

type Service struct{ store store }

func NewService(db *gorm.DB) *Service { return &Service{store: gormStore{db: db}} }

func (s *Service) Create(ctx context.Context, userID uint, dto *CreateReviewDTO) (*models.ReviewModel, error) {
	ok, err := s.store.bookExists(ctx, dto.BookID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errBookNotFound
	}

	r := models.ReviewModel{
		BookID:     dto.BookID,
		UserID:     userID,
		ReviewText: dto.ReviewText,
		Rating:     dto.Rating,
	}
	return &r, s.store.create(ctx, &r)
}

func (s *Service) ListByBook(ctx context.Context, bookID uint) ([]models.ReviewModel, error) {
	ok, err := s.store.bookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errBookNotFound
	}
	return s.store.listByBook(ctx, bookID)
}

// Delete removes a review. Only the review's author may delete it.
func (s *Service) Delete(ctx context.Context, userID, reviewID uint) error {
	r, err := s.store.byID(ctx, reviewID)
	if err != nil {
		return err
	}
	if r == nil {
		return errReviewNotFound
	}
	if r.UserID != userID {
		return errNotAuthor
	}
	return s.store.delete(ctx, reviewID)
}

type gormStore struct{ db *gorm.DB }

func (g gormStore) bookExists(ctx context.Context, bookID uint) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&models.BookModel{}).
		Where("id = ?", bookID).
		Count(&count).Error
	return count > 0, err
}

func (g gormStore) create(ctx context.Context, r *models.ReviewModel) error {
	return g.db.WithContext(ctx).Create(r).Error
}

func (g gormStore) listByBook(ctx context.Context, bookID uint) ([]models.ReviewModel, error) {
	var reviews []models.ReviewModel
	err := g.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("id ASC").
		Find(&reviews).Error
	return reviews, err
}

func (g gormStore) byID(ctx context.Context, id uint) (*models.ReviewModel, error) {
	var r models.ReviewModel
	if err := g.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (g gormStore) delete(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&models.ReviewModel{}, "id = ?", id).Error
}
