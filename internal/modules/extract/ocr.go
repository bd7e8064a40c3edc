package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/tabula/ocr"
	"github.com/tsawler/tabula/reader"
)

// ocrStrategy renders the images embedded in each page and runs them through
// Tesseract. It only kicks in for scanned PDFs, where the direct strategy
// finds no text layer. Requires the binary to be built with the "ocr" tag;
// otherwise ocr.New reports that OCR support is unavailable.
type ocrStrategy struct{}

// recognizer is the slice of ocr.Client the strategy needs.
type recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

func (ocrStrategy) Name() string { return "ocr" }

func (ocrStrategy) Extract(ctx context.Context, path string) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", fmt.Errorf("ocr client: %w", err)
	}
	defer client.Close()

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
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page, err := r.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		images, err := r.ExtractPageImages(page)
		if err != nil {
			return "", fmt.Errorf("page %d images: %w", i+1, err)
		}
		var pngs [][]byte
		for _, img := range images {
			png, err := img.ToPNG()
			if err != nil {
				// Unsupported color spaces happen; skip the image.
				continue
			}
			pngs = append(pngs, png)
		}
		text, err := recognizeImages(ctx, client, pngs)
		if err != nil {
			return "", fmt.Errorf("page %d ocr: %w", i+1, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// recognizeImages runs OCR over each image and concatenates the recognized
// text as-is, with no separators inserted between images or pages.
func recognizeImages(ctx context.Context, rec recognizer, pngs [][]byte) (string, error) {
	var sb strings.Builder
	for _, png := range pngs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := rec.RecognizeImage(png)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
