package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStrategy struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Extract(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestServiceText(t *testing.T) {
	t.Run("first strategy wins", func(t *testing.T) {
		direct := &fakeStrategy{name: "direct", text: "embedded text"}
		fallback := &fakeStrategy{name: "ocr", text: "ocr text"}
		svc := NewWithStrategies(zap.NewNop(), direct, fallback)

		text, err := svc.Text(context.Background(), "book.pdf")
		require.NoError(t, err)
		assert.Equal(t, "embedded text", text)
		assert.Equal(t, 1, direct.calls)
		assert.Equal(t, 0, fallback.calls, "fallback must not run when the text layer is readable")
	})

	t.Run("empty result falls through", func(t *testing.T) {
		direct := &fakeStrategy{name: "direct", text: "   \n\t"}
		fallback := &fakeStrategy{name: "ocr", text: "scanned words"}
		svc := NewWithStrategies(zap.NewNop(), direct, fallback)

		text, err := svc.Text(context.Background(), "scan.pdf")
		require.NoError(t, err)
		assert.Equal(t, "scanned words", text)
		assert.Equal(t, 1, direct.calls)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("strategy error falls through", func(t *testing.T) {
		direct := &fakeStrategy{name: "direct", err: errors.New("corrupt xref")}
		fallback := &fakeStrategy{name: "ocr", text: "recovered"}
		svc := NewWithStrategies(zap.NewNop(), direct, fallback)

		text, err := svc.Text(context.Background(), "broken.pdf")
		require.NoError(t, err)
		assert.Equal(t, "recovered", text)
	})

	t.Run("all strategies empty", func(t *testing.T) {
		svc := NewWithStrategies(zap.NewNop(),
			&fakeStrategy{name: "direct"},
			&fakeStrategy{name: "ocr"},
		)

		_, err := svc.Text(context.Background(), "blank.pdf")
		assert.ErrorIs(t, err, ErrUnreadableDocument)
	})

	t.Run("all strategies fail", func(t *testing.T) {
		svc := NewWithStrategies(zap.NewNop(),
			&fakeStrategy{name: "direct", err: errors.New("bad header")},
			&fakeStrategy{name: "ocr", err: errors.New("no tesseract")},
		)

		_, err := svc.Text(context.Background(), "garbage.pdf")
		assert.ErrorIs(t, err, ErrUnreadableDocument)
	})

	t.Run("cancelled context stops the chain", func(t *testing.T) {
		direct := &fakeStrategy{name: "direct", text: "never read"}
		svc := NewWithStrategies(zap.NewNop(), direct)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Text(ctx, "book.pdf")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, direct.calls)
	})
}

type fakeRecognizer struct {
	texts []string
	next  int
	err   error
}

func (f *fakeRecognizer) RecognizeImage(_ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	text := f.texts[f.next]
	f.next++
	return text, nil
}

func TestRecognizeImages(t *testing.T) {
	t.Run("results are concatenated without separators", func(t *testing.T) {
		rec := &fakeRecognizer{texts: []string{"A", "B", "C"}}
		got, err := recognizeImages(context.Background(), rec, [][]byte{{1}, {2}, {3}})
		require.NoError(t, err)
		assert.Equal(t, "ABC", got)
	})

	t.Run("recognition failure surfaces", func(t *testing.T) {
		rec := &fakeRecognizer{err: errors.New("tesseract crashed")}
		_, err := recognizeImages(context.Background(), rec, [][]byte{{1}})
		assert.Error(t, err)
	})

	t.Run("no images yields empty text", func(t *testing.T) {
		got, err := recognizeImages(context.Background(), &fakeRecognizer{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
