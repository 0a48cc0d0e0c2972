// Package api exposes the authors, books, comments and accounts resources over
// HTTP. Handlers decode and validate DTOs, call the services, and map service
// errors onto status codes and Spanish error bodies. Routes for the author
// resource are selected by the x-version header.
package api
