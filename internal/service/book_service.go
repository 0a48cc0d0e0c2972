package service

import (
	"context"
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jmoiron/sqlx"
)

const (
	msgNoAuthors      = "No se puede crear un libro sin autores."
	msgUnknownAuthors = "No existe alguno de los autores enviados."
)

// BookService provides book-related operations.
type BookService interface {
	// List returns one page of books ordered by id, plus the unpaginated total.
	List(ctx context.Context, page pagination.Request) ([]domain.Book, int, error)

	// Get returns a book with its byline and comments.
	Get(ctx context.Context, id int) (*domain.Book, error)

	// SearchByTitle returns the books whose title contains the given text.
	SearchByTitle(ctx context.Context, title string) ([]domain.Book, error)

	// Create stores a new book. Book.Authors lists the byline in order and
	// every referenced author must exist.
	Create(ctx context.Context, book *domain.Book) error

	// Update replaces the scalar fields and the byline of an existing book.
	Update(ctx context.Context, book *domain.Book) error

	// Patch loads a book, lets apply mutate its title and publication date,
	// and persists the result only when apply succeeds.
	Patch(ctx context.Context, id int, apply func(*domain.Book) error) error

	// Delete removes a book together with its byline and comments.
	Delete(ctx context.Context, id int) error
}

type bookServiceImpl struct {
	books   store.BookStore
	authors store.AuthorStore
	tx      store.Transactor
	logger  *slog.Logger
}

// NewBookService creates a new BookService.
// It returns an error if any of the required dependencies are nil.
func NewBookService(
	books store.BookStore,
	authors store.AuthorStore,
	tx store.Transactor,
	logger *slog.Logger,
) (BookService, error) {
	if books == nil {
		return nil, &ServiceError{Service: "book", Operation: "create_service", Message: "books cannot be nil"}
	}
	if authors == nil {
		return nil, &ServiceError{Service: "book", Operation: "create_service", Message: "authors cannot be nil"}
	}
	if tx == nil {
		return nil, &ServiceError{Service: "book", Operation: "create_service", Message: "transactor cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bookServiceImpl{
		books:   books,
		authors: authors,
		tx:      tx,
		logger:  logger.With("component", "book_service"),
	}, nil
}

func (s *bookServiceImpl) List(ctx context.Context, page pagination.Request) ([]domain.Book, int, error) {
	var (
		books []domain.Book
		total int
	)
	err := s.tx.InTx(ctx, store.ReadOnlySnapshot, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.books.WithTx(tx)
		var err error
		if total, err = txStore.Count(ctx); err != nil {
			return err
		}
		books, err = txStore.List(ctx, page)
		return err
	})
	if err != nil {
		return nil, 0, NewServiceError("book", "list", "failed to list books", err)
	}
	return books, total, nil
}

func (s *bookServiceImpl) Get(ctx context.Context, id int) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("book", "get", "failed to get book", err)
	}
	return book, nil
}

func (s *bookServiceImpl) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	books, err := s.books.SearchByTitle(ctx, title)
	if err != nil {
		return nil, NewServiceError("book", "search", "failed to search books", err)
	}
	return books, nil
}

// checkAuthors rejects an empty byline and any id without a stored author.
// Repeated ids count as unknown.
func (s *bookServiceImpl) checkAuthors(ctx context.Context, authors store.AuthorStore, book *domain.Book) error {
	ids := book.AuthorIDs()
	if len(ids) == 0 {
		return reject(ErrNoAuthors, msgNoAuthors)
	}
	existing, err := authors.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(existing) != len(ids) {
		return reject(ErrUnknownAuthors, msgUnknownAuthors)
	}
	return nil
}

func (s *bookServiceImpl) Create(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	err := s.tx.InTx(ctx, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.checkAuthors(ctx, s.authors.WithTx(tx), book); err != nil {
			return err
		}
		book.StampAuthorOrder()
		return s.books.WithTx(tx).Create(ctx, book)
	})
	if err != nil {
		return NewServiceError("book", "create", "failed to create book", err)
	}

	s.logger.Info("book created",
		slog.Int("book_id", book.ID),
		slog.Int("author_count", len(book.Authors)))
	return nil
}

func (s *bookServiceImpl) Update(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	err := s.tx.InTx(ctx, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		txBooks := s.books.WithTx(tx)
		exists, err := txBooks.Exists(ctx, book.ID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrBookNotFound
		}
		if err := s.checkAuthors(ctx, s.authors.WithTx(tx), book); err != nil {
			return err
		}
		book.StampAuthorOrder()
		return txBooks.Update(ctx, book)
	})
	if err != nil {
		return NewServiceError("book", "update", "failed to update book", err)
	}
	return nil
}

func (s *bookServiceImpl) Patch(ctx context.Context, id int, apply func(*domain.Book) error) error {
	err := s.tx.InTx(ctx, nil, func(ctx context.Context, tx *sqlx.Tx) error {
		txBooks := s.books.WithTx(tx)
		book, err := txBooks.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(book); err != nil {
			return err
		}
		book.ID = id
		if err := book.Validate(); err != nil {
			return err
		}
		return txBooks.UpdateDetails(ctx, book)
	})
	if err != nil {
		return NewServiceError("book", "patch", "failed to patch book", err)
	}
	return nil
}

func (s *bookServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.books.Delete(ctx, id); err != nil {
		return NewServiceError("book", "delete", "failed to delete book", err)
	}
	s.logger.Info("book deleted", slog.Int("book_id", id))
	return nil
}
