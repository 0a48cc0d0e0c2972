package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jmoiron/sqlx"
)

// AuthorService provides author-related operations.
type AuthorService interface {
	// List returns one page of authors ordered by name, plus the unpaginated total.
	List(ctx context.Context, page pagination.Request) ([]domain.Author, int, error)

	// ListAll returns every author ordered by id.
	ListAll(ctx context.Context) ([]domain.Author, error)

	// Get returns an author with the books it is credited on.
	Get(ctx context.Context, id int) (*domain.Author, error)

	// SearchByName returns the authors whose name contains the given text.
	SearchByName(ctx context.Context, name string) ([]domain.Author, error)

	// Create stores a new author. Names must be unique.
	Create(ctx context.Context, author *domain.Author) error

	// Update replaces the name of an existing author.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes an author and its book credits.
	Delete(ctx context.Context, id int) error
}

type authorServiceImpl struct {
	authors store.AuthorStore
	tx      store.Transactor
	logger  *slog.Logger
}

// NewAuthorService creates a new AuthorService.
// It returns an error if any of the required dependencies are nil.
func NewAuthorService(authors store.AuthorStore, tx store.Transactor, logger *slog.Logger) (AuthorService, error) {
	if authors == nil {
		return nil, &ServiceError{Service: "author", Operation: "create_service", Message: "authors cannot be nil"}
	}
	if tx == nil {
		return nil, &ServiceError{Service: "author", Operation: "create_service", Message: "transactor cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authorServiceImpl{
		authors: authors,
		tx:      tx,
		logger:  logger.With("component", "author_service"),
	}, nil
}

func (s *authorServiceImpl) List(ctx context.Context, page pagination.Request) ([]domain.Author, int, error) {
	var (
		authors []domain.Author
		total   int
	)
	err := s.tx.InTx(ctx, store.ReadOnlySnapshot, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.authors.WithTx(tx)
		var err error
		if total, err = txStore.Count(ctx); err != nil {
			return err
		}
		authors, err = txStore.List(ctx, page)
		return err
	})
	if err != nil {
		return nil, 0, NewServiceError("author", "list", "failed to list authors", err)
	}
	return authors, total, nil
}

func (s *authorServiceImpl) ListAll(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.authors.ListAll(ctx)
	if err != nil {
		return nil, NewServiceError("author", "list_all", "failed to list authors", err)
	}
	return authors, nil
}

func (s *authorServiceImpl) Get(ctx context.Context, id int) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("author", "get", "failed to get author", err)
	}
	return author, nil
}

func (s *authorServiceImpl) SearchByName(ctx context.Context, name string) ([]domain.Author, error) {
	authors, err := s.authors.SearchByName(ctx, name)
	if err != nil {
		return nil, NewServiceError("author", "search", "failed to search authors", err)
	}
	return authors, nil
}

func (s *authorServiceImpl) Create(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	// The check and the insert are separate statements; concurrent creates
	// with the same name can both succeed.
	exists, err := s.authors.ExistsByName(ctx, author.Name)
	if err != nil {
		return NewServiceError("author", "create", "failed to check author name", err)
	}
	if exists {
		return reject(ErrDuplicateAuthorName, fmt.Sprintf("Ya existe un autor con el nombre %s", author.Name))
	}

	if err := s.authors.Create(ctx, author); err != nil {
		s.logger.Error("failed to create author", slog.Any("error", err))
		return NewServiceError("author", "create", "failed to save author", err)
	}

	s.logger.Info("author created", slog.Int("author_id", author.ID))
	return nil
}

func (s *authorServiceImpl) Update(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}
	if err := s.authors.Update(ctx, author); err != nil {
		return NewServiceError("author", "update", "failed to update author", err)
	}
	return nil
}

func (s *authorServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return NewServiceError("author", "delete", "failed to delete author", err)
	}
	s.logger.Info("author deleted", slog.Int("author_id", id))
	return nil
}
