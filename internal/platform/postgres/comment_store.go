package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jmoiron/sqlx"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		// ALLOW-PANIC: constructor invariant
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO comments (content, book_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := s.db.QueryRowxContext(ctx, query, comment.Content, comment.BookID, comment.UserID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int("book_id", comment.BookID),
				slog.String("user_id", comment.UserID.String()))
			return fmt.Errorf("%w: book %d", store.ErrInvalidReference, comment.BookID)
		}
		log.Error("failed to create comment", slog.Int("book_id", comment.BookID), slog.Any("error", err))
		return MapError(entityComment, "create", err)
	}

	log.Info("comment created successfully",
		slog.Int("comment_id", comment.ID),
		slog.Int("book_id", comment.BookID))
	return nil
}

// GetByID implements store.CommentStore.GetByID
func (s *PostgresCommentStore) GetByID(ctx context.Context, bookID, id int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var row commentRow
	query := `
		SELECT id, content, book_id, user_id, created_at
		FROM comments
		WHERE id = $1 AND book_id = $2
	`
	if err := s.db.GetContext(ctx, &row, query, id, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.Int("comment_id", id), slog.Int("book_id", bookID))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment", slog.Int("comment_id", id), slog.Any("error", err))
		return nil, MapError(entityComment, "get", err)
	}

	comment := row.toDomain()
	return &comment, nil
}

// ListByBook implements store.CommentStore.ListByBook
func (s *PostgresCommentStore) ListByBook(ctx context.Context, bookID int) ([]domain.Comment, error) {
	var rows []commentRow
	query := `
		SELECT id, content, book_id, user_id, created_at
		FROM comments
		WHERE book_id = $1
		ORDER BY id
	`
	if err := s.db.SelectContext(ctx, &rows, query, bookID); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list comments",
			slog.Int("book_id", bookID),
			slog.Any("error", err))
		return nil, MapError(entityComment, "list", err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, r.toDomain())
	}
	return comments, nil
}

// Update implements store.CommentStore.Update
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE comments SET content = $1, user_id = $2 WHERE id = $3 AND book_id = $4`,
		comment.Content, comment.UserID, comment.ID, comment.BookID)
	if err != nil {
		log.Error("failed to update comment", slog.Int("comment_id", comment.ID), slog.Any("error", err))
		return MapError(entityComment, "update", err)
	}
	if err := CheckRowsAffected(result, store.ErrCommentNotFound, store.ErrUpdateFailed); err != nil {
		return err
	}

	log.Info("comment updated successfully", slog.Int("comment_id", comment.ID))
	return nil
}

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sqlx.Tx) store.CommentStore {
	return &PostgresCommentStore{db: tx, logger: s.logger}
}
