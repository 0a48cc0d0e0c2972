package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/service"
	"github.com/go-chi/chi/v5"
)

// BookHandler handles the /api/libros endpoints.
type BookHandler struct {
	books     service.BookService
	validator *dto.Validator
	patcher   *dto.BookPatcher
	linker    *hateoas.Linker
	logger    *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(
	books service.BookService,
	validator *dto.Validator,
	linker *hateoas.Linker,
	logger *slog.Logger,
) *BookHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BookHandler")
	}
	return &BookHandler{
		books:     books,
		validator: validator,
		patcher:   dto.NewBookPatcher(validator),
		linker:    linker,
		logger:    logger.With(slog.String("component", "book_handler")),
	}
}

// List handles GET /api/libros.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParseRequest(r)

	books, total, err := h.books.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	pagination.WriteTotalHeader(w, total)
	items := dto.ToLibroDTOs(books)
	shared.RespondWithJSON(w, r, http.StatusOK, hateoas.Collection(h.linker, r, hateoas.Books, items, hateoas.LibroDTO))
}

// Get handles GET /api/libros/{libroId}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}

	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	out := dto.ToLibroDTOConAutores(*book)
	h.linker.Decorate(r, hateoas.Books, out.ID, &out.Recurso)
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// SearchByTitle handles GET /api/libros/{titulo}.
func (h *BookHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.SearchByTitle(r.Context(), chi.URLParam(r, "titulo"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items := dto.ToLibroDTOs(books)
	shared.RespondWithJSON(w, r, http.StatusOK, hateoas.Collection(h.linker, r, hateoas.Books, items, hateoas.LibroDTO))
}

// Create handles POST /api/libros.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LibroCreacionDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	book := dto.BookFromCreation(req)
	if err := h.books.Create(r.Context(), book); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("book created",
		slog.Int("book_id", book.ID), slog.Int("author_count", len(book.Authors)))
	location := fmt.Sprintf("%s%s/%d", hateoas.BaseURL(r), hateoas.Books.Path, book.ID)
	shared.RespondCreated(w, r, location, dto.ToLibroDTO(*book))
}

// Update handles PUT /api/libros/{libroId}. The author list is replaced and its
// order re-stamped.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}

	var req dto.LibroCreacionDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	book := dto.BookFromCreation(req)
	book.ID = id
	if err := h.books.Update(r.Context(), book); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}

// Patch handles PATCH /api/libros/{libroId} with an RFC 6902 document.
func (h *BookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}

	document, err := shared.ReadBody(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidBody, err)
		return
	}

	err = h.books.Patch(r.Context(), id, func(book *domain.Book) error {
		return h.patcher.Apply(document, book)
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}

// Delete handles DELETE /api/libros/{libroId}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("book deleted", slog.Int("book_id", id))
	shared.RespondNoContent(w)
}
