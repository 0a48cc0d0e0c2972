package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"github.com/brayannhc07/webapiautores/internal/store"
)

// Client-facing messages.
const (
	MsgUnexpected     = "Ocurrió un error inesperado"
	MsgInvalidBody    = "El cuerpo de la solicitud no es válido."
	MsgInvalidPatch   = "El documento de parche no es válido."
	MsgInvalidData    = "Los datos enviados no son válidos."
	MsgUnauthorized   = "No autenticado"
	MsgForbidden      = "No autorizado"
	MsgTooManyRequest = "Demasiadas solicitudes"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var (
		validationErrs dto.ValidationErrors
		domainErr      *domain.ValidationError
	)

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, auth.ErrNotAdmin):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrBadRequest),
		errors.Is(err, dto.ErrInvalidPatch),
		errors.As(err, &validationErrs),
		errors.As(err, &domainErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
// Rejections carry their own message; everything else gets a fixed string.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	var rejection *service.RejectionError
	if errors.As(err, &rejection) {
		return rejection.Message
	}

	var domainErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return MsgUnauthorized
	case errors.Is(err, auth.ErrNotAdmin):
		return MsgForbidden
	case errors.Is(err, dto.ErrInvalidPatch):
		return MsgInvalidPatch
	case errors.Is(err, service.ErrBadRequest),
		errors.As(err, &domainErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidReference):
		return MsgInvalidData
	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the HTTP response for err. Not-found errors produce an
// empty 404, validation tables are returned field by field, and anything
// unexpected is logged and answered with a generic 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs dto.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.FromContext(r.Context()).Debug("request failed validation",
			slog.Int("field_count", len(validationErrs)))
		shared.RespondWithValidationErrors(w, r, validationErrs)
		return
	}

	status := MapErrorToStatusCode(err)
	if status == http.StatusNotFound {
		logger.FromContext(r.Context()).Debug("resource not found", slog.String("path", r.URL.Path))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
