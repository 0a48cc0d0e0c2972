package dto

import (
	"github.com/brayannhc07/webapiautores/internal/domain"
)

// AuthorFromCreation builds an unsaved author from a create or update request.
func AuthorFromCreation(in AutorCreacionDTO) *domain.Author {
	return &domain.Author{Name: in.Nombre}
}

// ToAutorDTO projects an author onto its summary view.
func ToAutorDTO(a domain.Author) AutorDTO {
	return AutorDTO{ID: a.ID, Nombre: a.Name}
}

// ToAutorDTOs projects a list of authors, preserving order.
func ToAutorDTOs(authors []domain.Author) []AutorDTO {
	out := make([]AutorDTO, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToAutorDTO(a))
	}
	return out
}

// ToAutorDTOConLibros projects an author with the books of its join rows.
// An author without loaded associations gets an empty list.
func ToAutorDTOConLibros(a domain.Author) AutorDTOConLibros {
	books := make([]LibroDTO, 0, len(a.Books))
	for _, ab := range a.Books {
		if ab.Book == nil {
			books = append(books, LibroDTO{ID: ab.BookID})
			continue
		}
		books = append(books, ToLibroDTO(*ab.Book))
	}
	return AutorDTOConLibros{AutorDTO: ToAutorDTO(a), Libros: books}
}

// ToAutoresDTOConLibros projects a list of authors onto detail views.
func ToAutoresDTOConLibros(authors []domain.Author) []AutorDTOConLibros {
	out := make([]AutorDTOConLibros, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToAutorDTOConLibros(a))
	}
	return out
}

// BookFromCreation builds an unsaved book with one join row per submitted
// author id, in submission order. Order is left for the service to stamp.
func BookFromCreation(in LibroCreacionDTO) *domain.Book {
	book := &domain.Book{
		Title:           in.Titulo,
		PublicationDate: in.FechaPublicacion.timePtr(),
		Authors:         make([]domain.AuthorBook, 0, len(in.AutoresIds)),
	}
	for _, id := range in.AutoresIds {
		book.Authors = append(book.Authors, domain.AuthorBook{AuthorID: id})
	}
	return book
}

// ToLibroDTO projects a book onto its summary view.
func ToLibroDTO(b domain.Book) LibroDTO {
	return LibroDTO{
		ID:               b.ID,
		Titulo:           b.Title,
		FechaPublicacion: fechaPtr(b.PublicationDate),
	}
}

// ToLibroDTOs projects a list of books, preserving order.
func ToLibroDTOs(books []domain.Book) []LibroDTO {
	out := make([]LibroDTO, 0, len(books))
	for _, b := range books {
		out = append(out, ToLibroDTO(b))
	}
	return out
}

// ToLibroDTOConAutores projects a book onto its detail view. Authors are
// listed by ascending Order whatever the order of the join rows.
func ToLibroDTOConAutores(b domain.Book) LibroDTOConAutores {
	rows := b.AuthorsByOrder()
	authors := make([]AutorDTO, 0, len(rows))
	for _, ab := range rows {
		if ab.Author == nil {
			authors = append(authors, AutorDTO{ID: ab.AuthorID})
			continue
		}
		authors = append(authors, ToAutorDTO(*ab.Author))
	}
	return LibroDTOConAutores{
		LibroDTO:    ToLibroDTO(b),
		Autores:     authors,
		Comentarios: ToComentarioDTOs(b.Comments),
	}
}

// ToLibroPatchDTO extracts the patchable fields of a book.
func ToLibroPatchDTO(b domain.Book) LibroPatchDTO {
	return LibroPatchDTO{
		Titulo:           b.Title,
		FechaPublicacion: fechaPtr(b.PublicationDate),
	}
}

// ApplyLibroPatchDTO copies the patchable fields onto a book.
func ApplyLibroPatchDTO(in LibroPatchDTO, b *domain.Book) {
	b.Title = in.Titulo
	b.PublicationDate = in.FechaPublicacion.timePtr()
}

// ToComentarioDTO projects a comment.
func ToComentarioDTO(c domain.Comment) ComentarioDTO {
	return ComentarioDTO{ID: c.ID, Contenido: c.Content, UsuarioID: c.UserID}
}

// ToComentarioDTOs projects a list of comments, preserving order.
func ToComentarioDTOs(comments []domain.Comment) []ComentarioDTO {
	out := make([]ComentarioDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToComentarioDTO(c))
	}
	return out
}
