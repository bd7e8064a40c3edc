// Package summarize condenses extracted book text into a short summary via
// the configured language model. Long texts are summarized in fixed-size
// chunks and the partial summaries are then condensed once more.
package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfmark/core/internal/pkg/llm"
	"go.uber.org/zap"
)

const defaultChunkLimit = 4000

type Service struct {
	gen    llm.Generator
	limit  int
	logger *zap.Logger
}

func New(gen llm.Generator, chunkLimit int, logger *zap.Logger) *Service {
	if chunkLimit <= 0 {
		chunkLimit = defaultChunkLimit
	}
	return &Service{gen: gen, limit: chunkLimit, logger: logger}
}

// Summarize produces a short summary of text. Texts within the chunk limit
// take a single model call. Longer texts are split into chunks of exactly
// the limit (the last chunk may be shorter), each chunk is summarized, and
// the joined partial summaries go through one final condensing call.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	runes := []rune(text)
	if len(runes) <= s.limit {
		return s.summarizeChunk(ctx, text)
	}

	chunks := splitRunes(runes, s.limit)
	s.logger.Debug("summarizing in chunks",
		zap.Int("chunks", len(chunks)),
		zap.Int("chunk_limit", s.limit))

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		part, err := s.summarizeChunk(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, part)
	}

	combined := strings.TrimSpace(strings.Join(parts, "\n\n"))
	return s.summarizeChunk(ctx, combined)
}

func (s *Service) summarizeChunk(ctx context.Context, text string) (string, error) {
	return s.gen.Generate(ctx, "Summarize this text: "+text)
}

func splitRunes(runes []rune, size int) []string {
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
