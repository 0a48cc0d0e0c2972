package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/service"
)

// CommentHandler handles /api/libros/{libroId}/comentarios.
type CommentHandler struct {
	comments  service.CommentService
	validator *dto.Validator
	logger    *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService, validator *dto.Validator, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}
	return &CommentHandler{
		comments:  comments,
		validator: validator,
		logger:    logger.With(slog.String("component", "comment_handler")),
	}
}

// List handles GET /api/libros/{libroId}/comentarios.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	bookID, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}

	comments, err := h.comments.List(r.Context(), bookID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.ToComentarioDTOs(comments))
}

// Get handles GET /api/libros/{libroId}/comentarios/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookID, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}
	id, ok := requirePathInt(w, r, "id")
	if !ok {
		return
	}

	comment, err := h.comments.Get(r.Context(), bookID, id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.ToComentarioDTO(*comment))
}

// Create handles POST /api/libros/{libroId}/comentarios. The comment is
// attributed to the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	bookID, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}

	var req dto.ComentarioCreacionDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	comment, err := h.comments.Create(r.Context(), bookID, userID, req.Contenido)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("comment created",
		slog.Int("comment_id", comment.ID), slog.Int("book_id", bookID))
	location := fmt.Sprintf("%s%s/%d/comentarios/%d", hateoas.BaseURL(r), hateoas.Books.Path, bookID, comment.ID)
	shared.RespondCreated(w, r, location, dto.ToComentarioDTO(*comment))
}

// Update handles PUT /api/libros/{libroId}/comentarios/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	bookID, ok := requirePathInt(w, r, "libroId")
	if !ok {
		return
	}
	id, ok := requirePathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.ComentarioCreacionDTO
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if err := h.comments.Update(r.Context(), bookID, id, userID, req.Contenido); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
