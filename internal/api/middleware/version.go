package middleware

import (
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/platform/logger"
)

// VersionHeader selects the API version of a versioned resource.
const VersionHeader = "x-version"

// VersionRouter dispatches to the handler registered for the request's
// x-version header. A missing or unknown version answers 404, as if no route
// matched.
func VersionRouter(versions map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := r.Header.Get(VersionHeader)
		h, ok := versions[version]
		if !ok {
			logger.FromContext(r.Context()).Debug("no handler for api version",
				slog.String("version", version),
				slog.String("path", r.URL.Path))
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
