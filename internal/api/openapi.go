package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"sync"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/hateoas"
	"github.com/brayannhc07/webapiautores/internal/api/middleware"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/danielgtaylor/huma/v2"
)

// APIVersions lists the versions of the authors resource.
var APIVersions = []int{1, 2}

const bearerScheme = "Bearer"

// docBuilder adds operations to one OpenAPI document.
type docBuilder struct {
	doc *huma.OpenAPI
}

func (b docBuilder) schema(v any) *huma.Schema {
	return b.doc.Components.Schemas.Schema(reflect.TypeOf(v), true, "")
}

func (b docBuilder) jsonContent(v any) map[string]*huma.MediaType {
	return map[string]*huma.MediaType{"application/json": {Schema: b.schema(v)}}
}

func (b docBuilder) body(v any) *huma.RequestBody {
	return &huma.RequestBody{Required: true, Content: b.jsonContent(v)}
}

func (b docBuilder) ok(v any) *huma.Response {
	return &huma.Response{Description: "OK", Content: b.jsonContent(v)}
}

func pathParam(name string, typ string) *huma.Param {
	return &huma.Param{Name: name, In: "path", Required: true, Schema: &huma.Schema{Type: typ}}
}

func headerParam(name, description string, required bool) *huma.Param {
	return &huma.Param{Name: name, In: "header", Description: description, Required: required,
		Schema: &huma.Schema{Type: huma.TypeString}}
}

func queryParam(name, description string) *huma.Param {
	return &huma.Param{Name: name, In: "query", Description: description, Schema: &huma.Schema{Type: huma.TypeInteger}}
}

var (
	respNoContent  = &huma.Response{Description: "No Content"}
	respBadRequest = &huma.Response{Description: "Bad Request"}
	respNotFound   = &huma.Response{Description: "Not Found"}
	respUnauth     = &huma.Response{Description: "Unauthorized"}
	respForbidden  = &huma.Response{Description: "Forbidden"}
	secured        = []map[string][]string{{bearerScheme: {}}}
)

func createdResponse() *huma.Response {
	return &huma.Response{
		Description: "Created",
		Headers:     map[string]*huma.Param{"Location": {Schema: &huma.Schema{Type: huma.TypeString}}},
	}
}

func pagedParams() []*huma.Param {
	return []*huma.Param{
		queryParam(pagination.PageParam, "Número de página, desde 1"),
		queryParam(pagination.PageSizeParam, fmt.Sprintf("Registros por página, máximo %d", pagination.MaxPageSize)),
		headerParam(hateoas.IncludeHeader, "true para incluir enlaces HATEOAS", false),
	}
}

func totalCountHeader() map[string]*huma.Param {
	return map[string]*huma.Param{pagination.TotalCountHeader: {Schema: &huma.Schema{Type: huma.TypeInteger}}}
}

// NewOpenAPI builds the document describing the given API version.
func NewOpenAPI(version int) *huma.OpenAPI {
	cfg := huma.DefaultConfig("WebApiAutores", "v"+strconv.Itoa(version))
	doc := cfg.OpenAPI
	doc.Info.Description = "Web API para trabajar con autores y libros"
	doc.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		bearerScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
			Description:  "Token JWT obtenido de /api/cuentas/login",
		},
	}

	b := docBuilder{doc: doc}
	b.addAuthorOperations(version)
	b.addBookOperations()
	b.addCommentOperations()
	b.addAccountOperations()
	return doc
}

func (b docBuilder) addAuthorOperations(version int) {
	versionHeader := headerParam(middleware.VersionHeader, "Versión del API", true)
	versionHeader.Schema.Enum = []any{strconv.Itoa(version)}
	suffix := "v" + strconv.Itoa(version)
	tags := []string{"Autores"}

	list := &huma.Operation{
		OperationID: "obtenerAutores" + suffix,
		Method:      http.MethodGet,
		Path:        "/api/autores",
		Summary:     "Lista los autores",
		Tags:        tags,
		Parameters:  []*huma.Param{versionHeader, headerParam(hateoas.IncludeHeader, "true para incluir enlaces HATEOAS", false)},
		Responses:   map[string]*huma.Response{"200": b.ok([]dto.AutorDTO{})},
	}
	if version == 1 {
		list.Parameters = append([]*huma.Param{versionHeader}, pagedParams()...)
		list.Summary = "Lista una página de autores ordenada por nombre"
	}
	list.Responses["200"].Headers = totalCountHeader()
	b.doc.AddOperation(list)

	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerAutor" + suffix,
		Method:      http.MethodGet,
		Path:        "/api/autores/{id}",
		Summary:     "Obtiene un autor con sus libros",
		Tags:        tags,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger), versionHeader},
		Responses:   map[string]*huma.Response{"200": b.ok(dto.AutorDTOConLibros{}), "404": respNotFound},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerAutorPorNombre" + suffix,
		Method:      http.MethodGet,
		Path:        "/api/autores/{nombre}",
		Summary:     "Busca autores cuyo nombre contiene el texto",
		Tags:        tags,
		Security:    secured,
		Parameters:  []*huma.Param{pathParam("nombre", huma.TypeString), versionHeader},
		Responses: map[string]*huma.Response{
			"200": b.ok([]dto.AutorDTOConLibros{}), "401": respUnauth, "403": respForbidden,
		},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "crearAutor" + suffix,
		Method:      http.MethodPost,
		Path:        "/api/autores",
		Summary:     "Crea un autor",
		Tags:        tags,
		Security:    secured,
		Parameters:  []*huma.Param{versionHeader},
		RequestBody: b.body(dto.AutorCreacionDTO{}),
		Responses: map[string]*huma.Response{
			"201": createdResponse(), "400": respBadRequest, "401": respUnauth, "403": respForbidden,
		},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "actualizarAutor" + suffix,
		Method:      http.MethodPut,
		Path:        "/api/autores/{id}",
		Summary:     "Actualiza un autor",
		Tags:        tags,
		Security:    secured,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger), versionHeader},
		RequestBody: b.body(dto.AutorCreacionDTO{}),
		Responses: map[string]*huma.Response{
			"204": respNoContent, "400": respBadRequest, "404": respNotFound, "401": respUnauth, "403": respForbidden,
		},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "borrarAutor" + suffix,
		Method:      http.MethodDelete,
		Path:        "/api/autores/{id}",
		Summary:     "Borra un autor",
		Tags:        tags,
		Security:    secured,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger), versionHeader},
		Responses: map[string]*huma.Response{
			"204": respNoContent, "404": respNotFound, "401": respUnauth, "403": respForbidden,
		},
	})
}

func (b docBuilder) addBookOperations() {
	tags := []string{"Libros"}

	list := b.ok([]dto.LibroDTO{})
	list.Headers = totalCountHeader()
	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerLibros",
		Method:      http.MethodGet,
		Path:        "/api/libros",
		Summary:     "Lista una página de libros",
		Tags:        tags,
		Parameters:  pagedParams(),
		Responses:   map[string]*huma.Response{"200": list},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerLibro",
		Method:      http.MethodGet,
		Path:        "/api/libros/{id}",
		Summary:     "Obtiene un libro con sus autores y comentarios",
		Tags:        tags,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger)},
		Responses:   map[string]*huma.Response{"200": b.ok(dto.LibroDTOConAutores{}), "404": respNotFound},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerLibrosPorTitulo",
		Method:      http.MethodGet,
		Path:        "/api/libros/{titulo}",
		Summary:     "Busca libros cuyo título contiene el texto",
		Tags:        tags,
		Parameters:  []*huma.Param{pathParam("titulo", huma.TypeString)},
		Responses:   map[string]*huma.Response{"200": b.ok([]dto.LibroDTO{})},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "crearLibro",
		Method:      http.MethodPost,
		Path:        "/api/libros",
		Summary:     "Crea un libro",
		Tags:        tags,
		RequestBody: b.body(dto.LibroCreacionDTO{}),
		Responses:   map[string]*huma.Response{"201": createdResponse(), "400": respBadRequest},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "actualizarLibro",
		Method:      http.MethodPut,
		Path:        "/api/libros/{id}",
		Summary:     "Reemplaza un libro y su lista de autores",
		Tags:        tags,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger)},
		RequestBody: b.body(dto.LibroCreacionDTO{}),
		Responses:   map[string]*huma.Response{"204": respNoContent, "400": respBadRequest, "404": respNotFound},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "patchLibro",
		Method:      http.MethodPatch,
		Path:        "/api/libros/{id}",
		Summary:     "Aplica un documento JSON Patch al título o la fecha de publicación",
		Tags:        tags,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger)},
		RequestBody: &huma.RequestBody{
			Required: true,
			Content: map[string]*huma.MediaType{
				"application/json-patch+json": {Schema: &huma.Schema{Type: huma.TypeArray, Items: &huma.Schema{Type: huma.TypeObject}}},
			},
		},
		Responses: map[string]*huma.Response{"204": respNoContent, "400": respBadRequest, "404": respNotFound},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "borrarLibro",
		Method:      http.MethodDelete,
		Path:        "/api/libros/{id}",
		Summary:     "Borra un libro",
		Tags:        tags,
		Parameters:  []*huma.Param{pathParam("id", huma.TypeInteger)},
		Responses:   map[string]*huma.Response{"204": respNoContent, "404": respNotFound},
	})
}

func (b docBuilder) addCommentOperations() {
	tags := []string{"Comentarios"}
	base := "/api/libros/{libroId}/comentarios"
	libroID := pathParam("libroId", huma.TypeInteger)

	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerComentarios",
		Method:      http.MethodGet,
		Path:        base,
		Summary:     "Lista los comentarios de un libro",
		Tags:        tags,
		Parameters:  []*huma.Param{libroID},
		Responses:   map[string]*huma.Response{"200": b.ok([]dto.ComentarioDTO{}), "404": respNotFound},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "obtenerComentario",
		Method:      http.MethodGet,
		Path:        base + "/{id}",
		Summary:     "Obtiene un comentario",
		Tags:        tags,
		Parameters:  []*huma.Param{libroID, pathParam("id", huma.TypeInteger)},
		Responses:   map[string]*huma.Response{"200": b.ok(dto.ComentarioDTO{}), "404": respNotFound},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "crearComentario",
		Method:      http.MethodPost,
		Path:        base,
		Summary:     "Comenta un libro",
		Tags:        tags,
		Security:    secured,
		Parameters:  []*huma.Param{libroID},
		RequestBody: b.body(dto.ComentarioCreacionDTO{}),
		Responses: map[string]*huma.Response{
			"201": createdResponse(), "400": respBadRequest, "401": respUnauth, "404": respNotFound,
		},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "actualizarComentario",
		Method:      http.MethodPut,
		Path:        base + "/{id}",
		Summary:     "Actualiza un comentario",
		Tags:        tags,
		Security:    secured,
		Parameters:  []*huma.Param{libroID, pathParam("id", huma.TypeInteger)},
		RequestBody: b.body(dto.ComentarioCreacionDTO{}),
		Responses: map[string]*huma.Response{
			"204": respNoContent, "400": respBadRequest, "401": respUnauth, "404": respNotFound,
		},
	})
}

func (b docBuilder) addAccountOperations() {
	tags := []string{"Cuentas"}

	b.doc.AddOperation(&huma.Operation{
		OperationID: "registrarUsuario",
		Method:      http.MethodPost,
		Path:        "/api/cuentas/registrar",
		Summary:     "Registra una cuenta",
		Tags:        tags,
		RequestBody: b.body(dto.CredencialesUsuario{}),
		Responses: map[string]*huma.Response{
			"201": {Description: "Created", Content: b.jsonContent(dto.RespuestaAutenticacion{})},
			"400": respBadRequest,
		},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/cuentas/login",
		Summary:     "Inicia sesión",
		Tags:        tags,
		RequestBody: b.body(dto.CredencialesUsuario{}),
		Responses:   map[string]*huma.Response{"200": b.ok(dto.RespuestaAutenticacion{}), "400": respBadRequest},
	})
	b.doc.AddOperation(&huma.Operation{
		OperationID: "renovarToken",
		Method:      http.MethodGet,
		Path:        "/api/cuentas/renovarToken",
		Summary:     "Renueva el token del usuario autenticado",
		Tags:        tags,
		Security:    secured,
		Responses:   map[string]*huma.Response{"200": b.ok(dto.RespuestaAutenticacion{}), "401": respUnauth},
	})
	for _, op := range []struct{ id, path, summary string }{
		{"hacerAdmin", "/api/cuentas/hacerAdmin", "Otorga el rol de administrador"},
		{"removerAdmin", "/api/cuentas/removerAdmin", "Retira el rol de administrador"},
	} {
		b.doc.AddOperation(&huma.Operation{
			OperationID: op.id,
			Method:      http.MethodPost,
			Path:        op.path,
			Summary:     op.summary,
			Tags:        tags,
			Security:    secured,
			RequestBody: b.body(dto.EditarAdminDTO{}),
			Responses: map[string]*huma.Response{
				"204": respNoContent, "400": respBadRequest, "401": respUnauth, "403": respForbidden,
			},
		})
	}
}

// OpenAPIHandler serves the document as JSON, rendering it once.
func OpenAPIHandler(doc *huma.OpenAPI) http.HandlerFunc {
	var (
		once sync.Once
		body []byte
		err  error
	)
	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { body, err = json.Marshal(doc) })
		if err != nil {
			HandleAPIError(w, r, fmt.Errorf("failed to render openapi document: %w", err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
