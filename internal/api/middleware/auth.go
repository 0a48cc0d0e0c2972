package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/redact"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
)

// Client-facing authentication messages.
const (
	MsgAuthRequired   = "No autenticado"
	MsgInvalidFormat  = "Formato de autorización inválido"
	MsgTokenExpired   = "El token ha expirado"
	MsgInvalidToken   = "Token inválido"
	MsgNotAdmin       = "No autorizado"
	MsgAuthFailure    = "Error de autenticación"
	bearerSchemeLabel = "Bearer"
)

// AuthMiddleware provides JWT authentication and admin authorization for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	admins     auth.AdminChecker
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, admins auth.AdminChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		admins:     admins,
	}
}

// Authenticate validates a bearer token when one is present and adds the user
// ID to the request context. Requests without an Authorization header pass
// through anonymously; a header that is present but invalid is rejected.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Check Bearer prefix
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, bearerSchemeLabel) || token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidFormat)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenExpired)
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			default:
				logger.FromContext(r.Context()).Error("failed to validate token",
					slog.String("error", redact.Error(err)))
				shared.RespondWithError(w, r, http.StatusInternalServerError, MsgAuthFailure)
			}
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With(slog.String("user_id", claims.UserID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser rejects anonymous requests with 401. It must run after Authenticate.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := shared.GetUserID(r.Context()); !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAuthRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
// The admin flag is read from the user store on every request.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := shared.GetUserID(r.Context())

		isAdmin, err := m.admins.IsAdmin(r.Context(), userID)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgAuthFailure, err)
			return
		}
		if !isAdmin {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, MsgNotAdmin, auth.ErrNotAdmin,
				shared.WithElevatedLogLevel())
			return
		}
		next.ServeHTTP(w, r)
	}))
}
