package providers

import (
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/config"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/samber/do/v2"
)

// ProvideJWTService provides token issuance and validation.
func ProvideJWTService(i do.Injector) (auth.JWTService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return auth.NewJWTService(cfg.Auth)
}

// ProvidePasswordHasher provides the bcrypt hasher.
func ProvidePasswordHasher(i do.Injector) (auth.PasswordHasher, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return auth.NewBcryptHasher(cfg.Auth.BCryptCost), nil
}

// ProvideAdminChecker provides the admin policy backed by the user store.
func ProvideAdminChecker(i do.Injector) (auth.AdminChecker, error) {
	return auth.NewStoreAdminPolicy(do.MustInvoke[store.UserStore](i)), nil
}

// ProvideAuthMiddleware provides the authentication middleware.
func ProvideAuthMiddleware(i do.Injector) (*middleware.AuthMiddleware, error) {
	return middleware.NewAuthMiddleware(
		do.MustInvoke[auth.JWTService](i),
		do.MustInvoke[auth.AdminChecker](i),
	), nil
}
