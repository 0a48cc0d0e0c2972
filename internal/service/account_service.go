package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/google/uuid"
)

const (
	msgLoginFailed = "Login incorrecto"
	msgEmailTaken  = "Ya existe una cuenta con ese email"
)

// ErrInvalidAccount rejects registration data that breaks the account rules.
var ErrInvalidAccount = fmt.Errorf("%w: invalid account data", ErrBadRequest)

// AccountService registers users, issues tokens and manages the admin role.
type AccountService interface {
	// Register creates an account and returns a token for it.
	Register(ctx context.Context, email, password string) (*auth.Token, error)

	// Login verifies credentials and returns a fresh token. Unknown emails
	// and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*auth.Token, error)

	// RenewToken issues a new token for an already authenticated user.
	RenewToken(ctx context.Context, userID uuid.UUID) (*auth.Token, error)

	// SetAdmin grants or revokes the admin role of the account with the given email.
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

type accountServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil {
		return nil, &ServiceError{Service: "account", Operation: "create_service", Message: "users cannot be nil"}
	}
	if hasher == nil {
		return nil, &ServiceError{Service: "account", Operation: "create_service", Message: "hasher cannot be nil"}
	}
	if tokens == nil {
		return nil, &ServiceError{Service: "account", Operation: "create_service", Message: "tokens cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &accountServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "account_service"),
	}, nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *accountServiceImpl) Register(ctx context.Context, email, password string) (*auth.Token, error) {
	user, err := domain.NewUser(NormalizeEmail(email), password)
	if err != nil {
		return nil, reject(ErrInvalidAccount, err.Error())
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, NewServiceError("account", "register", "failed to hash password", err)
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return nil, reject(ErrEmailTaken, msgEmailTaken)
		}
		return nil, NewServiceError("account", "register", "failed to save user", err)
	}

	s.logger.Info("account registered", slog.String("user_id", user.ID.String()))
	return s.issue(ctx, "register", user)
}

func (s *accountServiceImpl) Login(ctx context.Context, email, password string) (*auth.Token, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, reject(ErrInvalidCredentials, msgLoginFailed)
		}
		return nil, NewServiceError("account", "login", "failed to load user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login rejected", slog.String("user_id", user.ID.String()))
		return nil, reject(ErrInvalidCredentials, msgLoginFailed)
	}

	return s.issue(ctx, "login", user)
}

func (s *accountServiceImpl) RenewToken(ctx context.Context, userID uuid.UUID) (*auth.Token, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("account", "renew_token", "failed to load user", err)
	}
	return s.issue(ctx, "renew_token", user)
}

func (s *accountServiceImpl) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	if err := s.users.SetAdmin(ctx, NormalizeEmail(email), isAdmin); err != nil {
		return NewServiceError("account", "set_admin", "failed to update admin role", err)
	}
	s.logger.Info("admin role changed", slog.Bool("is_admin", isAdmin))
	return nil
}

func (s *accountServiceImpl) issue(ctx context.Context, operation string, user *domain.User) (*auth.Token, error) {
	token, err := s.tokens.GenerateToken(ctx, user)
	if err != nil {
		return nil, NewServiceError("account", operation, "failed to generate token", err)
	}
	return token, nil
}
