package review

import (
	"context"
	"testing"

	"github.com/shelfmark/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	books   map[uint]bool
	reviews map[uint]models.ReviewModel
	deleted []uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{books: map[uint]bool{}, reviews: map[uint]models.ReviewModel{}}
}

func (f *fakeStore) bookExists(_ context.Context, bookID uint) (bool, error) {
	return f.books[bookID], nil
}

func (f *fakeStore) create(_ context.Context, r *models.ReviewModel) error {
	r.ID = uint(len(f.reviews) + 1)
	f.reviews[r.ID] = *r
	return nil
}

func (f *fakeStore) listByBook(_ context.Context, bookID uint) ([]models.ReviewModel, error) {
	var out []models.ReviewModel
	for _, r := range f.reviews {
		if r.BookID == bookID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) byID(_ context.Context, id uint) (*models.ReviewModel, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeStore) delete(_ context.Context, id uint) error {
	delete(f.reviews, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("review on existing book", func(t *testing.T) {
		store := newFakeStore()
		store.books[1] = true
		svc := &Service{store: store}

		r, err := svc.Create(ctx, 7, &CreateReviewDTO{BookID: 1, ReviewText: "great", Rating: 5})
		require.NoError(t, err)
		assert.Equal(t, uint(7), r.UserID)
		assert.Len(t, store.reviews, 1)
	})

	t.Run("missing book", func(t *testing.T) {
		svc := &Service{store: newFakeStore()}

		_, err := svc.Create(ctx, 7, &CreateReviewDTO{BookID: 99, ReviewText: "great", Rating: 5})
		assert.ErrorIs(t, err, errBookNotFound)
	})
}

func TestListByBook(t *testing.T) {
	svc := &Service{store: newFakeStore()}

	_, err := svc.ListByBook(context.Background(), 42)
	assert.ErrorIs(t, err, errBookNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	seed := func() (*Service, *fakeStore) {
		store := newFakeStore()
		store.reviews[10] = models.ReviewModel{BookID: 1, UserID: 7, ReviewText: "mine"}
		r := store.reviews[10]
		r.ID = 10
		store.reviews[10] = r
		return &Service{store: store}, store
	}

	t.Run("author deletes own review", func(t *testing.T) {
		svc, store := seed()
		require.NoError(t, svc.Delete(ctx, 7, 10))
		assert.Equal(t, []uint{10}, store.deleted)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		svc, store := seed()
		err := svc.Delete(ctx, 8, 10)
		assert.ErrorIs(t, err, errNotAuthor)
		assert.Empty(t, store.deleted, "a rejected delete must not touch the row")
	})

	t.Run("missing review", func(t *testing.T) {
		svc, _ := seed()
		err := svc.Delete(ctx, 7, 404)
		assert.ErrorIs(t, err, errReviewNotFound)
	})
}
