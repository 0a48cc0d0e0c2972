package store

import (
	"context"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/jmoiron/sqlx"
)

// AuthorStore defines the interface for author data persistence.
type AuthorStore interface {
	// Create inserts a new author and sets its generated ID.
	Create(ctx context.Context, author *domain.Author) error

	// GetByID retrieves an author together with its book associations,
	// each carrying the referenced Book.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id int) (*domain.Author, error)

	// SearchByName returns the authors whose name contains the given text.
	// The match is case-sensitive. An empty result is not an error.
	SearchByName(ctx context.Context, name string) ([]domain.Author, error)

	// List returns one page of authors ordered by name, then ID.
	List(ctx context.Context, page pagination.Request) ([]domain.Author, error)

	// ListAll returns every author ordered by ID.
	ListAll(ctx context.Context) ([]domain.Author, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int, error)

	// Exists reports whether an author with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// ExistsByName reports whether an author with exactly this name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistingIDs returns the subset of ids that belong to existing authors.
	ExistingIDs(ctx context.Context, ids []int) ([]int, error)

	// Update replaces the author's name.
	// Returns ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes an author. Book associations are removed by cascade.
	// Returns ErrAuthorNotFound if the author does not exist.
	Delete(ctx context.Context, id int) error

	// WithTx returns a new AuthorStore that uses the provided transaction.
	WithTx(tx *sqlx.Tx) AuthorStore
}
