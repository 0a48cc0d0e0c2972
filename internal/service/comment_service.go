package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/google/uuid"
)

// CommentService provides operations on the comments of a book.
// Every operation answers ErrBookNotFound when the book does not exist.
type CommentService interface {
	List(ctx context.Context, bookID int) ([]domain.Comment, error)
	Get(ctx context.Context, bookID, id int) (*domain.Comment, error)

	// Create posts a comment on a book on behalf of userID.
	Create(ctx context.Context, bookID int, userID uuid.UUID, content string) (*domain.Comment, error)

	// Update replaces the content of an existing comment of the book.
	Update(ctx context.Context, bookID, id int, userID uuid.UUID, content string) error
}

type commentServiceImpl struct {
	comments store.CommentStore
	books    store.BookStore
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments store.CommentStore, books store.BookStore, logger *slog.Logger) (CommentService, error) {
	if comments == nil {
		return nil, &ServiceError{Service: "comment", Operation: "create_service", Message: "comments cannot be nil"}
	}
	if books == nil {
		return nil, &ServiceError{Service: "comment", Operation: "create_service", Message: "books cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentServiceImpl{
		comments: comments,
		books:    books,
		logger:   logger.With("component", "comment_service"),
	}, nil
}

func (s *commentServiceImpl) requireBook(ctx context.Context, bookID int) error {
	exists, err := s.books.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}
	return nil
}

func (s *commentServiceImpl) List(ctx context.Context, bookID int) ([]domain.Comment, error) {
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, NewServiceError("comment", "list", "failed to check book", err)
	}
	comments, err := s.comments.ListByBook(ctx, bookID)
	if err != nil {
		return nil, NewServiceError("comment", "list", "failed to list comments", err)
	}
	return comments, nil
}

func (s *commentServiceImpl) Get(ctx context.Context, bookID, id int) (*domain.Comment, error) {
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, NewServiceError("comment", "get", "failed to check book", err)
	}
	comment, err := s.comments.GetByID(ctx, bookID, id)
	if err != nil {
		return nil, NewServiceError("comment", "get", "failed to get comment", err)
	}
	return comment, nil
}

func (s *commentServiceImpl) Create(
	ctx context.Context,
	bookID int,
	userID uuid.UUID,
	content string,
) (*domain.Comment, error) {
	comment := &domain.Comment{Content: content, BookID: bookID, UserID: userID}
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, NewServiceError("comment", "create", "failed to check book", err)
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		// The book can vanish between the check and the insert.
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, ErrBookNotFound
		}
		return nil, NewServiceError("comment", "create", "failed to save comment", err)
	}

	s.logger.Info("comment created",
		slog.Int("comment_id", comment.ID),
		slog.Int("book_id", bookID))
	return comment, nil
}

func (s *commentServiceImpl) Update(ctx context.Context, bookID, id int, userID uuid.UUID, content string) error {
	comment := &domain.Comment{ID: id, Content: content, BookID: bookID, UserID: userID}
	if err := comment.Validate(); err != nil {
		return err
	}
	if err := s.requireBook(ctx, bookID); err != nil {
		return NewServiceError("comment", "update", "failed to check book", err)
	}
	if err := s.comments.Update(ctx, comment); err != nil {
		return NewServiceError("comment", "update", "failed to update comment", err)
	}
	return nil
}
