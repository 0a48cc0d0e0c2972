package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/go-chi/chi/v5"
)

// AuthorHandler handles the /api/autores endpoints of both API versions.
type AuthorHandler struct {
	authors   service.AuthorService
	validator *dto.Validator
	linker    *hateoas.Linker
	logger    *slog.Logger
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(
	authors service.AuthorService,
	validator *dto.Validator,
	linker *hateoas.Linker,
	logger *slog.Logger,
) *AuthorHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthorHandler")
	}
	return &AuthorHandler{
		authors:   authors,
		validator: validator,
		linker:    linker,
		logger:    logger.With(slog.String("component", "author_handler")),
	}
}

// ListPaged handles GET /api/autores for version 1: one page ordered by name,
// with the total count in the response headers.
func (h *AuthorHandler) ListPaged(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParseRequest(r)

	authors, total, err := h.authors.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	pagination.WriteTotalHeader(w, total)
	items := dto.ToAutorDTOs(authors)
	shared.RespondWithJSON(w, r, http.StatusOK, hateoas.Collection(h.linker, r, hateoas.Authors, items, hateoas.AutorDTO))
}

// ListAll handles GET /api/autores for version 2: every author, unpaged.
func (h *AuthorHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	pagination.WriteTotalHeader(w, len(authors))
	items := dto.ToAutorDTOs(authors)
	shared.RespondWithJSON(w, r, http.StatusOK, hateoas.Collection(h.linker, r, hateoas.Authors, items, hateoas.AutorDTO))
}

// Get handles GET /api/autores/{id}.
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "id")
	if !ok {
		return
	}

	author, err := h.authors.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	out := dto.ToAutorDTOConLibros(*author)
	h.linker.Decorate(r, hateoas.Authors, out.ID, &out.Recurso)
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// SearchByName handles GET /api/autores/{nombre}.
func (h *AuthorHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "nombre")

	authors, err := h.authors.SearchByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.ToAutoresDTOConLibros(authors))
}

// Create handles POST /api/autores.
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AutorCreacionDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	author := dto.AuthorFromCreation(req)
	if err := h.authors.Create(r.Context(), author); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("author created", slog.Int("author_id", author.ID))
	location := fmt.Sprintf("%s%s/%d", hateoas.BaseURL(r), hateoas.Authors.Path, author.ID)
	shared.RespondCreated(w, r, location, dto.ToAutorDTO(*author))
}

// Update handles PUT /api/autores/{id}.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.AutorCreacionDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	author := dto.AuthorFromCreation(req)
	author.ID = id
	if err := h.authors.Update(r.Context(), author); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}

// Delete handles DELETE /api/autores/{id}.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.authors.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("author deleted", slog.Int("author_id", id))
	shared.RespondNoContent(w)
}
