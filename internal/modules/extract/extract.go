// Package extract turns uploaded PDF documents into plain text. It tries a
// layered set of strategies in order and settles on the first one that
// produces any text, so image-only scans fall through to OCR without the
// caller having to know which kind of PDF it received.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnreadableDocument means every strategy ran and none produced text.
var ErrUnreadableDocument = errors.New("no readable text in document")

// Strategy extracts plain text from the PDF at path. An empty (or
// whitespace-only) result is not an error; it just sends the orchestrator on
// to the next strategy.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, path string) (string, error)
}

type Service struct {
	strategies []Strategy
	logger     *zap.Logger
}

// New builds the default pipeline: embedded text first, OCR as fallback.
func New(logger *zap.Logger) *Service {
	return NewWithStrategies(logger, &directStrategy{}, &ocrStrategy{})
}

func NewWithStrategies(logger *zap.Logger, strategies ...Strategy) *Service {
	return &Service{strategies: strategies, logger: logger}
}

// Text runs the strategies in order and returns the first non-empty result.
// Strategy failures are logged and skipped; if the whole chain comes up
// empty the document is reported as unreadable.
func (s *Service) Text(ctx context.Context, path string) (string, error) {
	var lastErr error
	for _, st := range s.strategies {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := st.Extract(ctx, path)
		if err != nil {
			s.logger.Warn("extraction strategy failed",
				zap.String("strategy", st.Name()),
				zap.Error(err))
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
		s.logger.Debug("extraction strategy produced no text",
			zap.String("strategy", st.Name()))
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, lastErr)
	}
	return "", ErrUnreadableDocument
}
