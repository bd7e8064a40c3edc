package review

import (
	"errors"

	"github.com/shelfmark/core/internal/models"
)

type CreateReviewDTO struct {
	BookID     uint    `json:"book_id"     binding:"required"`
	ReviewText string  `json:"review_text" binding:"required"`
	Rating     float64 `json:"rating"      binding:"required,min=0,max=5"`
}

type reviewResponse struct {
	ID         uint    `json:"id"`
	BookID     uint    `json:"book_id"`
	ReviewText string  `json:"review_text"`
	Rating     float64 `json:"rating"`
}

var (
	errBookNotFound   = errors.New("book not found")
	errReviewNotFound = errors.New("review not found")
	errNotAuthor      = errors.New("not the review author")
)

func toResponse(r *models.ReviewModel) reviewResponse {
	return reviewResponse{
		ID: r.ID, BookID: r.BookID,
		ReviewText: r.ReviewText, Rating: r.Rating,
	}
}
