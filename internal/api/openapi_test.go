package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAPI_Versions(t *testing.T) {
	for _, version := range APIVersions {
		doc := NewOpenAPI(version)

		require.NotNil(t, doc.Paths["/api/autores"])
		list := doc.Paths["/api/autores"].Get
		require.NotNil(t, list)

		var names []string
		for _, p := range list.Parameters {
			names = append(names, p.Name)
		}
		assert.Contains(t, names, "x-version")
		if version == 1 {
			assert.Contains(t, names, "pagina")
			assert.Contains(t, names, "recordPorPagina")
		} else {
			assert.NotContains(t, names, "pagina")
		}
		assert.Contains(t, list.Responses["200"].Headers, "cantidadTotalRegistros")
	}

	v1Doc, v2Doc := NewOpenAPI(1), NewOpenAPI(2)
	assert.NotEqual(t, v1Doc.Paths["/api/autores"].Get.OperationID, v2Doc.Paths["/api/autores"].Get.OperationID)
	assert.Equal(t, "v1", v1Doc.Info.Version)
}

func TestNewOpenAPI_CoversEveryResource(t *testing.T) {
	doc := NewOpenAPI(1)

	for _, path := range []string{
		"/api/autores/{id}",
		"/api/libros",
		"/api/libros/{id}",
		"/api/libros/{libroId}/comentarios",
		"/api/cuentas/registrar",
		"/api/cuentas/login",
		"/api/cuentas/renovarToken",
		"/api/cuentas/hacerAdmin",
	} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.NotNil(t, doc.Paths["/api/libros/{id}"].Patch)
	assert.Contains(t, doc.Components.SecuritySchemes, "Bearer")
}

func TestOpenAPIHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	OpenAPIHandler(NewOpenAPI(2)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/v2/swagger.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body, "openapi")
	assert.Contains(t, body, "paths")
}
