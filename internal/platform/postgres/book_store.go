package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jmoiron/sqlx"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		// ALLOW-PANIC: constructor invariant
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create", slog.Any("error", err))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO books (title, publication_date) VALUES ($1, $2) RETURNING id`
	if err := s.db.GetContext(ctx, &book.ID, query, book.Title, nullDate(book.PublicationDate)); err != nil {
		log.Error("failed to create book", slog.Any("error", err))
		return MapError(entityBook, "create", err)
	}

	if err := s.insertAuthors(ctx, book); err != nil {
		return err
	}

	log.Info("book created successfully",
		slog.Int("book_id", book.ID),
		slog.Int("author_count", len(book.Authors)))
	return nil
}

// insertAuthors writes one join row per entry of book.Authors, keyed to book.ID.
func (s *PostgresBookStore) insertAuthors(ctx context.Context, book *domain.Book) error {
	if len(book.Authors) == 0 {
		return nil
	}

	rows := make([]authorBookRow, 0, len(book.Authors))
	for i := range book.Authors {
		book.Authors[i].BookID = book.ID
		ab := book.Authors[i]
		rows = append(rows, authorBookRow{AuthorID: ab.AuthorID, BookID: ab.BookID, Order: ab.Order})
	}

	query := `INSERT INTO author_books (author_id, book_id, "order") VALUES (:author_id, :book_id, :order)`
	if _, err := sqlx.NamedExecContext(ctx, s.db, query, rows); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to insert book authors",
			slog.Int("book_id", book.ID),
			slog.Any("error", err))
		return MapError(entityBook, "link authors", err)
	}
	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving book by ID", slog.Int("book_id", id))

	var row bookRow
	err := s.db.GetContext(ctx, &row, `SELECT id, title, publication_date FROM books WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book", slog.Int("book_id", id), slog.Any("error", err))
		return nil, MapError(entityBook, "get", err)
	}

	var links []authorBookRow
	authorsQuery := `
		SELECT ab.author_id, ab.book_id, ab."order", a.name AS author_name
		FROM author_books ab
		JOIN authors a ON a.id = ab.author_id
		WHERE ab.book_id = $1
	`
	if err := s.db.SelectContext(ctx, &links, authorsQuery, id); err != nil {
		log.Error("failed to load book authors", slog.Int("book_id", id), slog.Any("error", err))
		return nil, MapError(entityBook, "get", err)
	}

	var comments []commentRow
	commentsQuery := `
		SELECT id, content, book_id, user_id, created_at
		FROM comments
		WHERE book_id = $1
		ORDER BY id
	`
	if err := s.db.SelectContext(ctx, &comments, commentsQuery, id); err != nil {
		log.Error("failed to load book comments", slog.Int("book_id", id), slog.Any("error", err))
		return nil, MapError(entityBook, "get", err)
	}

	book := row.toDomain()
	book.Authors = make([]domain.AuthorBook, 0, len(links))
	for _, l := range links {
		author := domain.Author{ID: l.AuthorID, Name: l.AuthorName.String}
		book.Authors = append(book.Authors, domain.AuthorBook{
			AuthorID: l.AuthorID,
			BookID:   l.BookID,
			Order:    l.Order,
			Author:   &author,
		})
	}
	book.Comments = make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		book.Comments = append(book.Comments, c.toDomain())
	}
	return &book, nil
}

// SearchByTitle implements store.BookStore.SearchByTitle
func (s *PostgresBookStore) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	query := `SELECT id, title, publication_date FROM books WHERE position($1 in title) > 0 ORDER BY id`
	return s.selectBooks(ctx, "search books", query, title)
}

// List implements store.BookStore.List
func (s *PostgresBookStore) List(ctx context.Context, page pagination.Request) ([]domain.Book, error) {
	query := `SELECT id, title, publication_date FROM books ORDER BY id LIMIT $1 OFFSET $2`
	return s.selectBooks(ctx, "list books", query, page.Limit(), page.Offset())
}

func (s *PostgresBookStore) selectBooks(ctx context.Context, op, query string, args ...any) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []bookRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to "+op, slog.Any("error", err))
		return nil, MapError(entityBook, "list", err)
	}

	books := make([]domain.Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.toDomain())
	}
	log.Debug(op, slog.Int("count", len(books)))
	return books, nil
}

// Count implements store.BookStore.Count
func (s *PostgresBookStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM books`); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count books", slog.Any("error", err))
		return 0, MapError(entityBook, "count", err)
	}
	return n, nil
}

// Exists implements store.BookStore.Exists
func (s *PostgresBookStore) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id)
	if err != nil {
		return false, MapError(entityBook, "exists", err)
	}
	return exists, nil
}

// Update implements store.BookStore.Update
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.UpdateDetails(ctx, book); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM author_books WHERE book_id = $1`, book.ID); err != nil {
		log.Error("failed to clear book authors", slog.Int("book_id", book.ID), slog.Any("error", err))
		return MapError(entityBook, "update", err)
	}
	if err := s.insertAuthors(ctx, book); err != nil {
		return err
	}

	log.Info("book updated successfully",
		slog.Int("book_id", book.ID),
		slog.Int("author_count", len(book.Authors)))
	return nil
}

// UpdateDetails implements store.BookStore.UpdateDetails
func (s *PostgresBookStore) UpdateDetails(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE books SET title = $1, publication_date = $2 WHERE id = $3`,
		book.Title, nullDate(book.PublicationDate), book.ID)
	if err != nil {
		log.Error("failed to update book", slog.Int("book_id", book.ID), slog.Any("error", err))
		return MapError(entityBook, "update", err)
	}
	return CheckRowsAffected(result, store.ErrBookNotFound, store.ErrUpdateFailed)
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete book", slog.Int("book_id", id), slog.Any("error", err))
		return MapError(entityBook, "delete", err)
	}
	if err := CheckRowsAffected(result, store.ErrBookNotFound, store.ErrDeleteFailed); err != nil {
		return err
	}

	log.Info("book deleted successfully", slog.Int("book_id", id))
	return nil
}

// WithTx implements store.BookStore.WithTx
func (s *PostgresBookStore) WithTx(tx *sqlx.Tx) store.BookStore {
	return &PostgresBookStore{db: tx, logger: s.logger}
}
