package api

import (
	"net/http"
	"testing"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentHandler_CreateAndRead(t *testing.T) {
	env := newTestEnv(t)
	env.authors.Seed("Borges")
	env.seedBook(t, "Ficciones", 1)

	rr := env.do(t, request{method: http.MethodPost, target: "/api/libros/1/comentarios", token: userToken, body: `{"contenido":"Excelente"}`})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "http://api.test/api/libros/1/comentarios/1", rr.Header().Get("Location"))

	created := decode[dto.ComentarioDTO](t, rr)
	assert.Equal(t, "Excelente", created.Contenido)
	assert.Equal(t, env.user.ID, created.UsuarioID)

	rr = env.do(t, request{method: http.MethodGet, target: "/api/libros/1/comentarios"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]dto.ComentarioDTO](t, rr), 1)

	rr = env.do(t, request{method: http.MethodGet, target: "/api/libros/1/comentarios/1"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created.ID, decode[dto.ComentarioDTO](t, rr).ID)

	got := decode[dto.LibroDTOConAutores](t, env.do(t, request{method: http.MethodGet, target: "/api/libros/1"}))
	assert.Len(t, got.Comentarios, 1, "book detail embeds its comments")
}

func TestCommentHandler_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.authors.Seed("Borges")
	env.seedBook(t, "Ficciones", 1)
	env.seedBook(t, "El Aleph", 1)
	rr := env.do(t, request{method: http.MethodPost, target: "/api/libros/1/comentarios", token: userToken, body: `{"contenido":"Uno"}`})
	require.Equal(t, http.StatusCreated, rr.Code)

	tests := []struct {
		name string
		req  request
		want int
	}{
		{"create anonymous", request{method: http.MethodPost, target: "/api/libros/1/comentarios", body: `{"contenido":"x"}`}, http.StatusUnauthorized},
		{"create bad token", request{method: http.MethodPost, target: "/api/libros/1/comentarios", token: "forged", body: `{"contenido":"x"}`}, http.StatusUnauthorized},
		{"create missing book", request{method: http.MethodPost, target: "/api/libros/9/comentarios", token: userToken, body: `{"contenido":"x"}`}, http.StatusNotFound},
		{"create empty content", request{method: http.MethodPost, target: "/api/libros/1/comentarios", token: userToken, body: `{"contenido":""}`}, http.StatusBadRequest},
		{"list missing book", request{method: http.MethodGet, target: "/api/libros/9/comentarios"}, http.StatusNotFound},
		{"get on another book", request{method: http.MethodGet, target: "/api/libros/2/comentarios/1"}, http.StatusNotFound},
		{"get missing comment", request{method: http.MethodGet, target: "/api/libros/1/comentarios/7"}, http.StatusNotFound},
		{"update on another book", request{method: http.MethodPut, target: "/api/libros/2/comentarios/1", token: userToken, body: `{"contenido":"y"}`}, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, env.do(t, tc.req).Code)
		})
	}
}

func TestCommentHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	env.authors.Seed("Borges")
	env.seedBook(t, "Ficciones", 1)
	env.do(t, request{method: http.MethodPost, target: "/api/libros/1/comentarios", token: userToken, body: `{"contenido":"Uno"}`})

	rr := env.do(t, request{method: http.MethodPut, target: "/api/libros/1/comentarios/1", token: adminToken, body: `{"contenido":"Corregido"}`})
	require.Equal(t, http.StatusNoContent, rr.Code)

	stored := env.comments.Comments[1]
	assert.Equal(t, "Corregido", stored.Content)
	assert.Equal(t, env.admin.ID, stored.UserID, "the editor becomes the comment's user")
}
