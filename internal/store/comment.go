package store

import (
	"context"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/jmoiron/sqlx"
)

// CommentStore defines the interface for comment data persistence.
// Every lookup is scoped to a book.
type CommentStore interface {
	// Create inserts a comment and sets its generated ID.
	// Returns ErrInvalidReference if the book does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment belonging to the given book.
	// Returns ErrCommentNotFound if no such comment exists on that book.
	GetByID(ctx context.Context, bookID, id int) (*domain.Comment, error)

	// ListByBook returns the book's comments ordered by ID.
	ListByBook(ctx context.Context, bookID int) ([]domain.Comment, error)

	// Update replaces the content and author of a comment on the given book.
	// Returns ErrCommentNotFound if no such comment exists on that book.
	Update(ctx context.Context, comment *domain.Comment) error

	// WithTx returns a new CommentStore that uses the provided transaction.
	WithTx(tx *sqlx.Tx) CommentStore
}
