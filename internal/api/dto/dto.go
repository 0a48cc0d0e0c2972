package dto

import (
	"time"

	"github.com/google/uuid"
)

// DatoHATEOAS is a hypermedia link.
type DatoHATEOAS struct {
	Enlace      string `json:"enlace"`
	Descripcion string `json:"descripcion"`
	Metodo      string `json:"metodo"`
}

// Recurso is embedded by every resource that can carry links.
type Recurso struct {
	Enlaces []DatoHATEOAS `json:"enlaces,omitempty"`
}

// ColeccionDeRecursos wraps a list of resources with collection-level links.
type ColeccionDeRecursos[T any] struct {
	Valores []T           `json:"valores"`
	Enlaces []DatoHATEOAS `json:"enlaces"`
}

// AutorDTO is the summary view of an author.
type AutorDTO struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Recurso
}

// AutorDTOConLibros is the detail view of an author.
type AutorDTOConLibros struct {
	AutorDTO
	Libros []LibroDTO `json:"libros"`
}

// AutorCreacionDTO is the body of author create and update requests.
type AutorCreacionDTO struct {
	Nombre string `json:"nombre" validate:"required,max=120,primeraletramayuscula"`
}

// LibroDTO is the summary view of a book.
type LibroDTO struct {
	ID               int    `json:"id"`
	Titulo           string `json:"titulo"`
	FechaPublicacion *Fecha `json:"fechaPublicacion"`
	Recurso
}

// LibroDTOConAutores is the detail view of a book. Autores follows the byline order.
type LibroDTOConAutores struct {
	LibroDTO
	Autores     []AutorDTO      `json:"autores"`
	Comentarios []ComentarioDTO `json:"comentarios"`
}

// LibroCreacionDTO is the body of book create and full update requests.
type LibroCreacionDTO struct {
	Titulo           string `json:"titulo" validate:"required,max=250,primeraletramayuscula"`
	FechaPublicacion *Fecha `json:"fechaPublicacion"`
	AutoresIds       []int  `json:"autoresIds"`
}

// LibroPatchDTO is the document that JSON Patch operations are applied to.
type LibroPatchDTO struct {
	Titulo           string `json:"titulo" validate:"required,max=250,primeraletramayuscula"`
	FechaPublicacion *Fecha `json:"fechaPublicacion"`
}

// ComentarioDTO is the view of a comment.
type ComentarioDTO struct {
	ID        int       `json:"id"`
	Contenido string    `json:"contenido"`
	UsuarioID uuid.UUID `json:"usuarioId"`
}

// ComentarioCreacionDTO is the body of comment create and update requests.
type ComentarioCreacionDTO struct {
	Contenido string `json:"contenido" validate:"required"`
}

// CredencialesUsuario is the body of register and login requests.
type CredencialesUsuario struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RespuestaAutenticacion is returned by every endpoint that issues a token.
type RespuestaAutenticacion struct {
	Token      string    `json:"token"`
	Expiracion time.Time `json:"expiracion"`
}

// EditarAdminDTO is the body of the admin role endpoints.
type EditarAdminDTO struct {
	Email string `json:"email" validate:"required,email"`
}
