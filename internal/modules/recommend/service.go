// Package recommend asks the language model to pick one book from the
// catalog that matches the caller's review history.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfmark/core/internal/models"
	"github.com/shelfmark/core/internal/pkg/llm"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// catalog is the slice of persistence the service needs; tests swap in a
// fake, the GORM implementation lives below.
type catalog interface {
	reviewsByUser(ctx context.Context, userID uint) ([]models.ReviewModel, error)
	allBooks(ctx context.Context) ([]models.BookModel, error)
}

type Service struct {
	store  catalog
	gen    llm.Generator
	logger *zap.Logger
}

func NewService(db *gorm.DB, gen llm.Generator, logger *zap.Logger) *Service {
	return &Service{store: gormCatalog{db: db}, gen: gen, logger: logger}
}

// Recommend builds a prompt from the caller's reviews and every catalog
// summary, then maps the model's reply back onto a real book. A caller with
// no reviews gets the no-recommendation outcome rather than an error; a
// non-empty review history against an empty catalog is an error because
// there is nothing to recommend from.
func (s *Service) Recommend(ctx context.Context, userID uint) (Recommendation, error) {
	reviews, err := s.store.reviewsByUser(ctx, userID)
	if err != nil {
		return Recommendation{}, err
	}
	if len(reviews) == 0 {
		return noRecommendation(), nil
	}

	books, err := s.store.allBooks(ctx)
	if err != nil {
		return Recommendation{}, err
	}
	if len(books) == 0 {
		return Recommendation{}, errEmptyCatalog
	}

	reply, err := s.gen.Generate(ctx, buildPrompt(reviews, books))
	if err != nil {
		return Recommendation{}, err
	}
	return pickRecommendation(s.logger, reply, books), nil
}

func buildPrompt(reviews []models.ReviewModel, books []models.BookModel) string {
	var sb strings.Builder
	sb.WriteString("Recommend a book that aligns with the user's preferences based on their past reviews and reading history. ")
	sb.WriteString("Analyze the themes, genres, and writing style from their previous reviews, and suggest a book that matches those elements. ")
	sb.WriteString("Additionally, consider the key highlights and themes from the provided book summary to ensure the recommendation fits the user's interests and literary tastes.\n")
	sb.WriteString("Here are some book reviews by a user:\n")
	for _, r := range reviews {
		fmt.Fprintf(&sb, "Review for book id %d: review %s\n", r.BookID, r.ReviewText)
	}
	sb.WriteString("\nHere are the summaries of available books:\n")
	for _, b := range books {
		fmt.Fprintf(&sb, "book id %d: summary %s\n", b.ID, b.Summary)
	}
	sb.WriteString("\nBased on the user's reviews, please recommend books from the list of available books.\n")
	sb.WriteString("Provide the recommendations in the following JSON format:\n")
	sb.WriteString(`{"book_id": <book_id>}`)
	return sb.String()
}

// pickRecommendation maps the model reply onto the catalog. Unparseable
// replies and ids that match no book both degrade to the no-recommendation
// outcome instead of failing the request.
func pickRecommendation(logger *zap.Logger, reply string, books []models.BookModel) Recommendation {
	var parsed struct {
		BookID uint `json:"book_id"`
	}
	if err := llm.DecodeJSON(reply, &parsed); err != nil {
		logger.Warn("unparseable recommendation reply", zap.Error(err))
		return noRecommendation()
	}
	if parsed.BookID == 0 {
		return noRecommendation()
	}
	for i := range books {
		if books[i].ID == parsed.BookID {
			summary := books[i].Summary
			return Recommendation{
				BookID:         &books[i].ID,
				Summary:        &summary,
				Recommendation: recommendationMessage,
			}
		}
	}
	logger.Warn("model recommended unknown book", zap.Uint("book_id", parsed.BookID))
	return noRecommendation()
}

type gormCatalog struct{ db *gorm.DB }

func (g gormCatalog) reviewsByUser(ctx context.Context, userID uint) ([]models.ReviewModel, error) {
	var reviews []models.ReviewModel
	err := g.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&reviews).Error
	return reviews, err
}

func (g gormCatalog) allBooks(ctx context.Context) ([]models.BookModel, error) {
	var books []models.BookModel
	err := g.db.WithContext(ctx).Find(&books).Error
	return books, err
}
