package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
)

// directStrategy reads the text layer embedded in the PDF. Pages are
// concatenated as-is, without inserting separators between them.
type directStrategy struct{}

func (directStrategy) Name() string { return "direct" }

func (directStrategy) Extract(ctx context.Context, path string) (string, error) {
	r, err := reader.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer r.Close()

	count, err := r.PageCount()
	if err != nil {
		return "", fmt.Errorf("page count: %w", err)
	}

	var sb strings.Builder
	for page := 1; page <= count; page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, _, err := tabula.FromReader(r).Pages(page).Text()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", page, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
