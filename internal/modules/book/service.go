package book

import (
	"context"
	"errors"

	"github.com/shelfmark/core/internal/models"
	"github.com/shelfmark/core/internal/pkg/pagination"
	"github.com/shelfmark/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(ctx context.Context, dto *CreateBookDTO) (*models.BookModel, error) {
	b := models.BookModel{
		Title:         dto.Title,
		Author:        dto.Author,
		Genre:         dto.Genre,
		YearPublished: dto.YearPublished,
		Summary:       dto.Summary,
	}
	return &b, s.db.WithContext(ctx).Create(&b).Error
}

func (s *Service) List(ctx context.Context, q pagination.Query) ([]models.BookModel, response.Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.BookModel{}).Order("id ASC")
	var items []models.BookModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// GetByID returns (nil, nil) when the book does not exist.
func (s *Service) GetByID(ctx context.Context, id uint) (*models.BookModel, error) {
	var b models.BookModel
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *Service) Update(ctx context.Context, id uint, dto *UpdateBookDTO) (*models.BookModel, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil || b == nil {
		return b, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.Genre != nil {
		updates["genre"] = *dto.Genre
	}
	if dto.YearPublished != nil {
		updates["year_published"] = *dto.YearPublished
	}
	if dto.Summary != nil {
		updates["summary"] = *dto.Summary
	}
	if len(updates) == 0 {
		return b, nil
	}
	return b, s.db.WithContext(ctx).Model(b).Updates(updates).Error
}

// Delete removes a book; its reviews go with it via the store's FK cascade,
// not an application-level transaction.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.BookModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Summary returns the stored summary plus the average review rating; the
// average is nil when the book has no reviews.
func (s *Service) Summary(ctx context.Context, id uint) (*summaryResponse, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}

	var row struct {
		Count int64
		Avg   float64
	}
	err = s.db.WithContext(ctx).Model(&models.ReviewModel{}).
		Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
		Where("book_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	resp := summaryResponse{Summary: b.Summary}
	if row.Count > 0 {
		avg := row.Avg
		resp.AverageRating = &avg
	}
	return &resp, nil
}
