package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrAuthorNotFound", ErrAuthorNotFound, true},
		{"ErrBookNotFound", ErrBookNotFound, true},
		{"ErrCommentNotFound", ErrCommentNotFound, true},
		{"wrapped ErrUserNotFound", fmt.Errorf("failed to find user: %w", ErrUserNotFound), true},
		{"duplicate is not not-found", ErrEmailExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrBookNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("book", "create", "failed to insert", cause)

	assert.Equal(t, "create operation on book failed: failed to insert: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("author", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on author failed: no rows", bare.Error())
}
