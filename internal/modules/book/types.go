package book

import (
	"time"

	"github.com/shelfmark/core/internal/models"
)

type CreateBookDTO struct {
	Title         string `json:"title"          binding:"required"`
	Author        string `json:"author"         binding:"required"`
	Genre         string `json:"genre"          binding:"required"`
	YearPublished int    `json:"year_published" binding:"required"`
	Summary       string `json:"summary"`
}

type UpdateBookDTO struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Genre         *string `json:"genre"`
	YearPublished *int    `json:"year_published"`
	Summary       *string `json:"summary"`
}

type bookResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	YearPublished int       `json:"year_published"`
	Summary       string    `json:"summary"`
	Created       time.Time `json:"created"`
	Modified      time.Time `json:"modified"`
}

type summaryResponse struct {
	Summary       string   `json:"summary"`
	AverageRating *float64 `json:"average_rating"`
}

func toResponse(b *models.BookModel) bookResponse {
	return bookResponse{
		ID: b.ID, Title: b.Title, Author: b.Author, Genre: b.Genre,
		YearPublished: b.YearPublished, Summary: b.Summary,
		Created: b.CreatedAt, Modified: b.UpdatedAt,
	}
}
