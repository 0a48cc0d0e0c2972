package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a free-text note left on a book by a registered user.
type Comment struct {
	ID        int
	Content   string
	BookID    int
	UserID    uuid.UUID
	CreatedAt time.Time
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.Content == "" {
		return NewValidationError("content", "is required", ErrEmptyContent)
	}
	if c.BookID <= 0 {
		return NewValidationError("book_id", "must be positive", ErrInvalidID)
	}
	return nil
}
