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

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the AuthorStore interface.
// It accepts a database connection or transaction managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		// ALLOW-PANIC: constructor invariant
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

// Ensure PostgresAuthorStore implements store.AuthorStore interface
var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

// Create implements store.AuthorStore.Create
func (s *PostgresAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		log.Warn("author validation failed during create", slog.Any("error", err))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `INSERT INTO authors (name) VALUES ($1) RETURNING id`
	if err := s.db.GetContext(ctx, &author.ID, query, author.Name); err != nil {
		log.Error("failed to create author", slog.Any("error", err))
		return MapError(entityAuthor, "create", err)
	}

	log.Info("author created successfully", slog.Int("author_id", author.ID))
	return nil
}

// GetByID implements store.AuthorStore.GetByID
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id int) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving author by ID", slog.Int("author_id", id))

	var row authorRow
	err := s.db.GetContext(ctx, &row, `SELECT id, name FROM authors WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("author not found", slog.Int("author_id", id))
			return nil, store.ErrAuthorNotFound
		}
		log.Error("failed to get author", slog.Int("author_id", id), slog.Any("error", err))
		return nil, MapError(entityAuthor, "get", err)
	}

	var links []authorBookRow
	query := `
		SELECT ab.author_id, ab.book_id, ab."order",
		       b.title AS book_title, b.publication_date
		FROM author_books ab
		JOIN books b ON b.id = ab.book_id
		WHERE ab.author_id = $1
		ORDER BY b.id
	`
	if err := s.db.SelectContext(ctx, &links, query, id); err != nil {
		log.Error("failed to load author books", slog.Int("author_id", id), slog.Any("error", err))
		return nil, MapError(entityAuthor, "get", err)
	}

	author := row.toDomain()
	author.Books = make([]domain.AuthorBook, 0, len(links))
	for _, l := range links {
		book := bookRow{ID: l.BookID, Title: l.BookTitle.String, PublicationDate: l.PublicationDate}.toDomain()
		author.Books = append(author.Books, domain.AuthorBook{
			AuthorID: l.AuthorID,
			BookID:   l.BookID,
			Order:    l.Order,
			Book:     &book,
		})
	}
	return &author, nil
}

// SearchByName implements store.AuthorStore.SearchByName
func (s *PostgresAuthorStore) SearchByName(ctx context.Context, name string) ([]domain.Author, error) {
	query := `SELECT id, name FROM authors WHERE position($1 in name) > 0 ORDER BY id`
	return s.selectAuthors(ctx, "search authors", query, name)
}

// List implements store.AuthorStore.List
func (s *PostgresAuthorStore) List(ctx context.Context, page pagination.Request) ([]domain.Author, error) {
	query := `SELECT id, name FROM authors ORDER BY name, id LIMIT $1 OFFSET $2`
	return s.selectAuthors(ctx, "list authors", query, page.Limit(), page.Offset())
}

// ListAll implements store.AuthorStore.ListAll
func (s *PostgresAuthorStore) ListAll(ctx context.Context) ([]domain.Author, error) {
	return s.selectAuthors(ctx, "list all authors", `SELECT id, name FROM authors ORDER BY id`)
}

func (s *PostgresAuthorStore) selectAuthors(ctx context.Context, op, query string, args ...any) ([]domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []authorRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Error("failed to "+op, slog.Any("error", err))
		return nil, MapError(entityAuthor, "list", err)
	}

	authors := make([]domain.Author, 0, len(rows))
	for _, r := range rows {
		authors = append(authors, r.toDomain())
	}
	log.Debug(op, slog.Int("count", len(authors)))
	return authors, nil
}

// Count implements store.AuthorStore.Count
func (s *PostgresAuthorStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM authors`); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count authors", slog.Any("error", err))
		return 0, MapError(entityAuthor, "count", err)
	}
	return n, nil
}

// Exists implements store.AuthorStore.Exists
func (s *PostgresAuthorStore) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id)
	if err != nil {
		return false, MapError(entityAuthor, "exists", err)
	}
	return exists, nil
}

// ExistsByName implements store.AuthorStore.ExistsByName
func (s *PostgresAuthorStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM authors WHERE name = $1)`, name)
	if err != nil {
		return false, MapError(entityAuthor, "exists", err)
	}
	return exists, nil
}

// ExistingIDs implements store.AuthorStore.ExistingIDs
func (s *PostgresAuthorStore) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return []int{}, nil
	}

	query, args, err := sqlx.In(`SELECT id FROM authors WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build author id query: %w", err)
	}

	found := []int{}
	if err := s.db.SelectContext(ctx, &found, s.db.Rebind(query), args...); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to look up author ids", slog.Any("error", err))
		return nil, MapError(entityAuthor, "existing ids", err)
	}
	return found, nil
}

// Update implements store.AuthorStore.Update
func (s *PostgresAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `UPDATE authors SET name = $1 WHERE id = $2`, author.Name, author.ID)
	if err != nil {
		log.Error("failed to update author", slog.Int("author_id", author.ID), slog.Any("error", err))
		return MapError(entityAuthor, "update", err)
	}
	if err := CheckRowsAffected(result, store.ErrAuthorNotFound, store.ErrUpdateFailed); err != nil {
		return err
	}

	log.Info("author updated successfully", slog.Int("author_id", author.ID))
	return nil
}

// Delete implements store.AuthorStore.Delete
func (s *PostgresAuthorStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete author", slog.Int("author_id", id), slog.Any("error", err))
		return MapError(entityAuthor, "delete", err)
	}
	if err := CheckRowsAffected(result, store.ErrAuthorNotFound, store.ErrDeleteFailed); err != nil {
		return err
	}

	log.Info("author deleted successfully", slog.Int("author_id", id))
	return nil
}

// WithTx implements store.AuthorStore.WithTx
func (s *PostgresAuthorStore) WithTx(tx *sqlx.Tx) store.AuthorStore {
	return &PostgresAuthorStore{db: tx, logger: s.logger}
}
