package hateoas

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdmins struct {
	admins map[uuid.UUID]bool
	err    error
	calls  int
}

func (s *stubAdmins) IsAdmin(_ context.Context, id uuid.UUID) (bool, error) {
	s.calls++
	return s.admins[id], s.err
}

func newRequest(t *testing.T, header string, userID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://api.test/api/autores", nil)
	if header != "" {
		req.Header.Set(IncludeHeader, header)
	}
	if userID != uuid.Nil {
		req = req.WithContext(shared.WithUserID(req.Context(), userID))
	}
	return req
}

func descriptions(links []dto.DatoHATEOAS) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Descripcion
	}
	return out
}

func TestRequested(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"true", true},
		{"True", true},
		{"1", true},
		{"false", false},
		{"yes", false},
	}
	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			assert.Equal(t, tc.want, Requested(newRequest(t, tc.header, uuid.Nil)))
		})
	}
}

func TestBaseURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.test/x", nil)
	assert.Equal(t, "http://api.test", BaseURL(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://api.test", BaseURL(req))
}

func TestResourceLinks(t *testing.T) {
	req := newRequest(t, "true", uuid.Nil)

	anon := ResourceLinks(req, Authors, 5, false)
	assert.Equal(t, []string{"self", "autores"}, descriptions(anon))
	assert.Equal(t, "http://api.test/api/autores/5", anon[0].Enlace)
	assert.Equal(t, "http://api.test/api/autores", anon[1].Enlace)

	admin := ResourceLinks(req, Books, 3, true)
	assert.Equal(t, []string{"self", "libros", "libro-actualizar", "libro-borrar", "crear-libro"}, descriptions(admin))
	assert.Equal(t, http.MethodPut, admin[2].Metodo)
	assert.Equal(t, http.MethodDelete, admin[3].Metodo)
	assert.Equal(t, http.MethodPost, admin[4].Metodo)
	assert.Equal(t, "http://api.test/api/libros", admin[4].Enlace)
}

func TestCollectionLinks(t *testing.T) {
	req := newRequest(t, "true", uuid.Nil)
	assert.Equal(t, []string{"self"}, descriptions(CollectionLinks(req, Authors, false)))
	assert.Equal(t, []string{"self", "crear-autor"}, descriptions(CollectionLinks(req, Authors, true)))
}

func TestLinker_IsAdmin(t *testing.T) {
	adminID, userID := uuid.New(), uuid.New()
	admins := &stubAdmins{admins: map[uuid.UUID]bool{adminID: true}}
	l := NewLinker(admins)

	assert.False(t, l.IsAdmin(newRequest(t, "true", uuid.Nil)))
	assert.Equal(t, 0, admins.calls, "anonymous callers are not looked up")
	assert.False(t, l.IsAdmin(newRequest(t, "true", userID)))
	assert.True(t, l.IsAdmin(newRequest(t, "true", adminID)))

	failing := NewLinker(&stubAdmins{err: errors.New("db down")})
	assert.False(t, failing.IsAdmin(newRequest(t, "true", adminID)))
}

func TestDecorate(t *testing.T) {
	adminID := uuid.New()
	l := NewLinker(&stubAdmins{admins: map[uuid.UUID]bool{adminID: true}})

	t.Run("header absent", func(t *testing.T) {
		a := dto.AutorDTO{ID: 1}
		l.Decorate(newRequest(t, "", adminID), Authors, a.ID, &a.Recurso)
		assert.Nil(t, a.Enlaces)
	})

	t.Run("admin", func(t *testing.T) {
		a := dto.AutorDTO{ID: 1}
		l.Decorate(newRequest(t, "true", adminID), Authors, a.ID, &a.Recurso)
		assert.Len(t, a.Enlaces, 5)
	})

	t.Run("anonymous", func(t *testing.T) {
		a := dto.AutorDTO{ID: 1}
		l.Decorate(newRequest(t, "true", uuid.Nil), Authors, a.ID, &a.Recurso)
		assert.Len(t, a.Enlaces, 2)
	})
}

func TestCollection(t *testing.T) {
	l := NewLinker(&stubAdmins{})
	items := []dto.AutorDTO{{ID: 2, Nombre: "B"}, {ID: 1, Nombre: "A"}}

	t.Run("without header returns items", func(t *testing.T) {
		got := Collection(l, newRequest(t, "", uuid.Nil), Authors, items, AutorDTO)
		plain, ok := got.([]dto.AutorDTO)
		require.True(t, ok)
		assert.Nil(t, plain[0].Enlaces)
	})

	t.Run("with header wraps and preserves order", func(t *testing.T) {
		got := Collection(l, newRequest(t, "true", uuid.Nil), Authors, items, AutorDTO)
		env, ok := got.(dto.ColeccionDeRecursos[dto.AutorDTO])
		require.True(t, ok)
		require.Len(t, env.Valores, 2)
		assert.Equal(t, 2, env.Valores[0].ID)
		assert.Equal(t, "http://api.test/api/autores/2", env.Valores[0].Enlaces[0].Enlace)
		assert.Equal(t, []string{"self"}, descriptions(env.Enlaces))
	})
}
