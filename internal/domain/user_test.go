package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("test@example.com", "password123")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "password123", user.Password)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid with plaintext password",
			user: User{ID: uuid.New(), Email: "a@b.co", Password: "password123"},
		},
		{
			name: "valid with stored hash",
			user: User{ID: uuid.New(), Email: "a@b.co", HashedPassword: "$2a$10$hash"},
		},
		{
			name:    "missing id",
			user:    User{Email: "a@b.co", Password: "password123"},
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "missing email",
			user:    User{ID: uuid.New(), Password: "password123"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			user:    User{ID: uuid.New(), Email: "not-an-email", Password: "password123"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "display name form is rejected",
			user:    User{ID: uuid.New(), Email: "Bob <bob@example.com>", Password: "password123"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password too short",
			user:    User{ID: uuid.New(), Email: "a@b.co", Password: "short"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "password too long",
			user:    User{ID: uuid.New(), Email: "a@b.co", Password: strings.Repeat("x", 73)},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:    "no password at all",
			user:    User{ID: uuid.New(), Email: "a@b.co"},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
