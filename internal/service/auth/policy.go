package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/google/uuid"
)

// AdminChecker decides whether a user holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// StoreAdminPolicy reads the admin flag from the user store on every call, so
// granting or revoking the role takes effect without reissuing tokens.
type StoreAdminPolicy struct {
	users store.UserStore
}

// NewStoreAdminPolicy creates an AdminChecker backed by the user store.
func NewStoreAdminPolicy(users store.UserStore) *StoreAdminPolicy {
	if users == nil {
		// ALLOW-PANIC: constructor invariant
		panic("users cannot be nil")
	}
	return &StoreAdminPolicy{users: users}
}

var _ AdminChecker = (*StoreAdminPolicy)(nil)

// IsAdmin implements AdminChecker. Unknown users are not admins.
func (p *StoreAdminPolicy) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	user, err := p.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load user for admin check: %w", err)
	}
	return user.IsAdmin, nil
}
