package api

import (
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
)

// AccountHandler handles the /api/cuentas endpoints.
type AccountHandler struct {
	accounts  service.AccountService
	validator *dto.Validator
	logger    *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts service.AccountService, validator *dto.Validator, logger *slog.Logger) *AccountHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}
	return &AccountHandler{
		accounts:  accounts,
		validator: validator,
		logger:    logger.With(slog.String("component", "account_handler")),
	}
}

func tokenResponse(t *auth.Token) dto.RespuestaAutenticacion {
	return dto.RespuestaAutenticacion{Token: t.Value, Expiracion: t.ExpiresAt}
}

// Register handles POST /api/cuentas/registrar.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredencialesUsuario
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	token, err := h.accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, tokenResponse(token))
}

// Login handles POST /api/cuentas/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredencialesUsuario
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	token, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tokenResponse(token))
}

// RenewToken handles GET /api/cuentas/renovarToken.
func (h *AccountHandler) RenewToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	token, err := h.accounts.RenewToken(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tokenResponse(token))
}

// MakeAdmin handles POST /api/cuentas/hacerAdmin.
func (h *AccountHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.setAdmin(w, r, true)
}

// RemoveAdmin handles POST /api/cuentas/removerAdmin.
func (h *AccountHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	h.setAdmin(w, r, false)
}

func (h *AccountHandler) setAdmin(w http.ResponseWriter, r *http.Request, isAdmin bool) {
	var req dto.EditarAdminDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if err := h.accounts.SetAdmin(r.Context(), req.Email, isAdmin); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("admin role changed", slog.Bool("is_admin", isAdmin))
	shared.RespondNoContent(w)
}
