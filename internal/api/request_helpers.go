package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// pathInt parses a positive integer route parameter. ok is false when the
// parameter is absent or not a positive integer.
func pathInt(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requirePathInt extracts an integer route parameter and answers 404 when it
// is not one, matching routes constrained to integer segments.
func requirePathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, ok := pathInt(r, name)
	if !ok {
		logger.FromContext(r.Context()).Debug("non-integer route parameter",
			slog.String("param", name), slog.String("value", chi.URLParam(r, name)))
		w.WriteHeader(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into dst and validates it. It
// writes the error response itself and reports whether handling may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *dto.Validator, dst any) bool {
	if err := shared.DecodeJSON(r, dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidBody, err)
		return false
	}
	if err := v.Validate(dst); err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	return true
}

// requireUserID returns the authenticated user ID or answers 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
