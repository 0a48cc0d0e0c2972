package service_test

import (
	"context"
	"testing"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/mocks"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (service.CommentService, *mocks.MockCommentStore, int) {
	t.Helper()
	comments := mocks.NewMockCommentStore()
	books := mocks.NewMockBookStore()
	book := &domain.Book{Title: "Ficciones"}
	require.NoError(t, books.Create(context.Background(), book))

	svc, err := service.NewCommentService(comments, books, nil)
	require.NoError(t, err)
	return svc, comments, book.ID
}

func TestCommentService_CreateAndGet(t *testing.T) {
	t.Parallel()

	svc, _, bookID := newCommentService(t)
	userID := uuid.New()

	created, err := svc.Create(context.Background(), bookID, userID, "Excelente")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, userID, created.UserID)

	got, err := svc.Get(context.Background(), bookID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Excelente", got.Content)

	list, err := svc.List(context.Background(), bookID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommentService_MissingBook(t *testing.T) {
	t.Parallel()

	svc, comments, _ := newCommentService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, 99)
	assert.ErrorIs(t, err, service.ErrBookNotFound)

	_, err = svc.Get(ctx, 99, 1)
	assert.ErrorIs(t, err, service.ErrBookNotFound)

	_, err = svc.Create(ctx, 99, uuid.New(), "Hola")
	assert.ErrorIs(t, err, service.ErrBookNotFound)
	assert.Empty(t, comments.Comments)

	assert.ErrorIs(t, svc.Update(ctx, 99, 1, uuid.New(), "Hola"), service.ErrBookNotFound)
}

func TestCommentService_Create_BookDeletedConcurrently(t *testing.T) {
	t.Parallel()

	svc, comments, bookID := newCommentService(t)
	comments.CreateFn = func(ctx context.Context, c *domain.Comment) error {
		return store.ErrInvalidReference
	}

	_, err := svc.Create(context.Background(), bookID, uuid.New(), "Hola")
	assert.ErrorIs(t, err, service.ErrBookNotFound)
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	t.Parallel()

	svc, comments, bookID := newCommentService(t)

	_, err := svc.Create(context.Background(), bookID, uuid.New(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
	assert.Empty(t, comments.Comments)
}

func TestCommentService_Get_CommentOfAnotherBook(t *testing.T) {
	t.Parallel()

	svc, comments, bookID := newCommentService(t)
	require.NoError(t, comments.Create(context.Background(), &domain.Comment{Content: "x", BookID: bookID + 1}))

	_, err := svc.Get(context.Background(), bookID, 1)
	assert.ErrorIs(t, err, service.ErrCommentNotFound)
}

func TestCommentService_Update(t *testing.T) {
	t.Parallel()

	svc, comments, bookID := newCommentService(t)
	userID := uuid.New()
	created, err := svc.Create(context.Background(), bookID, userID, "Primera")
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), bookID, created.ID, userID, "Corregida"))
	assert.Equal(t, "Corregida", comments.Comments[created.ID].Content)

	err = svc.Update(context.Background(), bookID, 404, userID, "Nada")
	assert.ErrorIs(t, err, service.ErrCommentNotFound)
}
