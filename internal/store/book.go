package store

import (
	"context"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/jmoiron/sqlx"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// Create inserts the book and its author associations and sets the
	// generated ID on the book and on every join row.
	// IMPORTANT: this writes several rows and must run inside RunInTransaction.
	// Returns ErrInvalidReference if an associated author does not exist.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book with its authors (join rows carrying the
	// referenced Author) and its comments.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int) (*domain.Book, error)

	// SearchByTitle returns the books whose title contains the given text.
	SearchByTitle(ctx context.Context, title string) ([]domain.Book, error)

	// List returns one page of books ordered by ID.
	List(ctx context.Context, page pagination.Request) ([]domain.Book, error)

	// Count returns the total number of books.
	Count(ctx context.Context) (int, error)

	// Exists reports whether a book with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// Update replaces the book's scalar fields and its whole author list.
	// IMPORTANT: this writes several rows and must run inside RunInTransaction.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// UpdateDetails replaces only the title and publication date.
	// Returns ErrBookNotFound if the book does not exist.
	UpdateDetails(ctx context.Context, book *domain.Book) error

	// Delete removes a book. Associations and comments are removed by cascade.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int) error

	// WithTx returns a new BookStore that uses the provided transaction.
	WithTx(tx *sqlx.Tx) BookStore
}
