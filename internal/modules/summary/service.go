// Package summary exposes the PDF upload endpoint that extracts a book's
// text and produces a short generated summary of it.
package summary

import (
	"context"

	"github.com/shelfmark/core/internal/modules/extract"
	"github.com/shelfmark/core/internal/modules/summarize"
)

type Service struct {
	extractor  *extract.Service
	summarizer *summarize.Service
}

func NewService(extractor *extract.Service, summarizer *summarize.Service) *Service {
	return &Service{extractor: extractor, summarizer: summarizer}
}

func (s *Service) GenerateFromFile(ctx context.Context, path string) (string, error) {
	text, err := s.extractor.Text(ctx, path)
	if err != nil {
		return "", err
	}
	return s.summarizer.Summarize(ctx, text)
}
