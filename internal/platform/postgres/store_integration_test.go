//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/platform/postgres"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/brayannhc07/webapiautores/internal/testdb"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAuthors(t *testing.T, s store.AuthorStore, names ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(names))
	for _, name := range names {
		a := &domain.Author{Name: name}
		require.NoError(t, s.Create(context.Background(), a))
		ids = append(ids, a.ID)
	}
	return ids
}

func TestAuthorStoreIntegration(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresAuthorStore(tx, nil)

		before, err := s.Count(ctx)
		require.NoError(t, err)

		ids := createAuthors(t, s, "Julio Cortázar", "Jorge Luis Borges", "Juana Inés")

		after, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+3, after)

		found, err := s.SearchByName(ctx, "Ju")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(found), 2)

		exists, err := s.ExistsByName(ctx, "Jorge Luis Borges")
		require.NoError(t, err)
		assert.True(t, exists)

		existing, err := s.ExistingIDs(ctx, []int{ids[0], ids[2], -1})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{ids[0], ids[2]}, existing)

		require.NoError(t, s.Update(ctx, &domain.Author{ID: ids[1], Name: "Borges"}))
		got, err := s.GetByID(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, "Borges", got.Name)
		assert.NotNil(t, got.Books)

		require.NoError(t, s.Delete(ctx, ids[1]))
		_, err = s.GetByID(ctx, ids[1])
		assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	})
}

func TestBookStoreIntegration_AuthorOrder(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		ctx := context.Background()
		authors := postgres.NewPostgresAuthorStore(tx, nil)
		books := postgres.NewPostgresBookStore(tx, nil)

		ids := createAuthors(t, authors, "Primero", "Segundo", "Tercero")
		published := time.Date(1963, 6, 28, 0, 0, 0, 0, time.UTC)

		book := &domain.Book{Title: "Rayuela", PublicationDate: &published}
		for _, id := range []int{ids[2], ids[0], ids[1]} {
			book.Authors = append(book.Authors, domain.AuthorBook{AuthorID: id})
		}
		book.StampAuthorOrder()
		require.NoError(t, books.Create(ctx, book))

		got, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.NotNil(t, got.PublicationDate)
		assert.Equal(t, "1963-06-28", got.PublicationDate.Format(time.DateOnly))

		ordered := got.AuthorsByOrder()
		require.Len(t, ordered, 3)
		assert.Equal(t, "Tercero", ordered[0].Author.Name)
		assert.Equal(t, "Primero", ordered[1].Author.Name)
		assert.Equal(t, "Segundo", ordered[2].Author.Name)

		// Replace the byline entirely.
		got.Authors = []domain.AuthorBook{{AuthorID: ids[1]}}
		got.StampAuthorOrder()
		require.NoError(t, books.Update(ctx, got))

		again, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, again.Authors, 1)
		assert.Equal(t, 0, again.Authors[0].Order)

		// The author's detail sees the book through the join row.
		author, err := authors.GetByID(ctx, ids[1])
		require.NoError(t, err)
		require.Len(t, author.Books, 1)
		assert.Equal(t, "Rayuela", author.Books[0].Book.Title)

		page, err := books.List(ctx, pagination.New(1, 50))
		require.NoError(t, err)
		assert.NotEmpty(t, page)
	})
}

func TestBookStoreIntegration_UnknownAuthor(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		books := postgres.NewPostgresBookStore(tx, nil)
		err := books.Create(context.Background(), &domain.Book{
			Title:   "Huérfano",
			Authors: []domain.AuthorBook{{AuthorID: -1}},
		})
		assert.ErrorIs(t, err, store.ErrInvalidReference)
	})
}

func TestCommentAndUserStoreIntegration(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)
		books := postgres.NewPostgresBookStore(tx, nil)
		comments := postgres.NewPostgresCommentStore(tx, nil)

		user, err := domain.NewUser("lector@example.com", "password123")
		require.NoError(t, err)
		user.HashedPassword = "$2a$10$abcdefghijklmnopqrstuv"
		require.NoError(t, users.Create(ctx, user))

		require.NoError(t, users.SetAdmin(ctx, user.Email, true))
		stored, err := users.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.True(t, stored.IsAdmin)

		book := &domain.Book{Title: "Pedro Páramo"}
		require.NoError(t, books.Create(ctx, book))

		c := &domain.Comment{Content: "Muy bueno", BookID: book.ID, UserID: user.ID}
		require.NoError(t, comments.Create(ctx, c))
		assert.NotZero(t, c.ID)

		_, err = comments.GetByID(ctx, book.ID+1000, c.ID)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)

		c.Content = "Excelente"
		require.NoError(t, comments.Update(ctx, c))

		list, err := comments.ListByBook(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Excelente", list[0].Content)

		// Deleting the book cascades to its comments.
		require.NoError(t, books.Delete(ctx, book.ID))
		list, err = comments.ListByBook(ctx, book.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
