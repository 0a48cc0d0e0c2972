// Package hateoas decorates GET responses with hypermedia links when the
// client opts in through the incluirHATEOAS request header.
package hateoas

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/brayannhc07/webapiautores/internal/api/shared"
	"github.com/brayannhc07/webapiautores/internal/platform/logger"
	"github.com/brayannhc07/webapiautores/internal/redact"
	"github.com/brayannhc07/webapiautores/internal/service/auth"
)

// IncludeHeader is the request header that enables link injection.
const IncludeHeader = "incluirHATEOAS"

// Resource names a linkable resource type.
type Resource struct {
	Singular string // e.g. "autor"
	Plural   string // e.g. "autores"
	Path     string // collection path, e.g. "/api/autores"
}

// Resources exposed by the API.
var (
	Authors = Resource{Singular: "autor", Plural: "autores", Path: "/api/autores"}
	Books   = Resource{Singular: "libro", Plural: "libros", Path: "/api/libros"}
)

// Requested reports whether the client asked for links. Only a value that
// parses as true enables them.
func Requested(r *http.Request) bool {
	v := r.Header.Get(IncludeHeader)
	if v == "" {
		return false
	}
	ok, err := strconv.ParseBool(v)
	return err == nil && ok
}

// BaseURL returns scheme://host for the request, honoring X-Forwarded-Proto.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// Linker builds links for resources and collections.
type Linker struct {
	admins auth.AdminChecker
}

// NewLinker creates a Linker that consults admins to decide which links to emit.
func NewLinker(admins auth.AdminChecker) *Linker {
	return &Linker{admins: admins}
}

// IsAdmin reports whether the authenticated caller is an admin. Anonymous
// callers and lookup failures count as non-admin.
func (l *Linker) IsAdmin(r *http.Request) bool {
	userID, ok := shared.GetUserID(r.Context())
	if !ok || l.admins == nil {
		return false
	}
	isAdmin, err := l.admins.IsAdmin(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Warn("admin lookup failed, omitting admin links",
			slog.String("error", redact.Error(err)))
		return false
	}
	return isAdmin
}

// ResourceLinks returns the links of a single resource in their fixed order.
func ResourceLinks(r *http.Request, res Resource, id int, admin bool) []dto.DatoHATEOAS {
	base := BaseURL(r) + res.Path
	item := fmt.Sprintf("%s/%d", base, id)

	links := []dto.DatoHATEOAS{
		{Enlace: item, Descripcion: "self", Metodo: http.MethodGet},
		{Enlace: base, Descripcion: res.Plural, Metodo: http.MethodGet},
	}
	if admin {
		links = append(links,
			dto.DatoHATEOAS{Enlace: item, Descripcion: res.Singular + "-actualizar", Metodo: http.MethodPut},
			dto.DatoHATEOAS{Enlace: item, Descripcion: res.Singular + "-borrar", Metodo: http.MethodDelete},
			dto.DatoHATEOAS{Enlace: base, Descripcion: "crear-" + res.Singular, Metodo: http.MethodPost},
		)
	}
	return links
}

// CollectionLinks returns the envelope links of a resource list.
func CollectionLinks(r *http.Request, res Resource, admin bool) []dto.DatoHATEOAS {
	base := BaseURL(r) + res.Path
	links := []dto.DatoHATEOAS{
		{Enlace: base, Descripcion: "self", Metodo: http.MethodGet},
	}
	if admin {
		links = append(links, dto.DatoHATEOAS{Enlace: base, Descripcion: "crear-" + res.Singular, Metodo: http.MethodPost})
	}
	return links
}

// Decorate attaches resource links to rec when the client requested them.
func (l *Linker) Decorate(r *http.Request, res Resource, id int, rec *dto.Recurso) {
	if !Requested(r) {
		return
	}
	rec.Enlaces = ResourceLinks(r, res, id, l.IsAdmin(r))
}

// Collection wraps items in a link envelope when the client requested links;
// otherwise it returns items unchanged. recurso exposes the id and the link
// holder of one item.
func Collection[T any](l *Linker, r *http.Request, res Resource, items []T, recurso func(*T) (int, *dto.Recurso)) any {
	if !Requested(r) {
		return items
	}
	admin := l.IsAdmin(r)
	for i := range items {
		id, rec := recurso(&items[i])
		rec.Enlaces = ResourceLinks(r, res, id, admin)
	}
	return dto.ColeccionDeRecursos[T]{
		Valores: items,
		Enlaces: CollectionLinks(r, res, admin),
	}
}

// AutorDTO is the accessor passed to Collection for author summaries.
func AutorDTO(a *dto.AutorDTO) (int, *dto.Recurso) { return a.ID, &a.Recurso }

// LibroDTO is the accessor passed to Collection for book summaries.
func LibroDTO(b *dto.LibroDTO) (int, *dto.Recurso) { return b.ID, &b.Recurso }
