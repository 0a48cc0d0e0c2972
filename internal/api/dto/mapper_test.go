package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLibroDTOConAutores_SortsByOrder(t *testing.T) {
	t.Parallel()

	author := func(id int, name string) *domain.Author { return &domain.Author{ID: id, Name: name} }
	rows := []domain.AuthorBook{
		{AuthorID: 1, Order: 0, Author: author(1, "Primero")},
		{AuthorID: 2, Order: 1, Author: author(2, "Segundo")},
		{AuthorID: 3, Order: 2, Author: author(3, "Tercero")},
	}
	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}, {1, 0, 2}}

	for _, perm := range permutations {
		stored := make([]domain.AuthorBook, 0, len(rows))
		for _, i := range perm {
			stored = append(stored, rows[i])
		}
		book := domain.Book{ID: 9, Title: "Antología", Authors: stored}

		got := ToLibroDTOConAutores(book)

		require.Len(t, got.Autores, 3)
		assert.Equal(t, "Primero", got.Autores[0].Nombre)
		assert.Equal(t, "Segundo", got.Autores[1].Nombre)
		assert.Equal(t, "Tercero", got.Autores[2].Nombre)
		assert.Equal(t, stored, book.Authors, "projection must not reorder the entity")
	}
}

func TestToLibroDTOConAutores_EmptyCollections(t *testing.T) {
	t.Parallel()

	got := ToLibroDTOConAutores(domain.Book{ID: 1, Title: "Solo"})
	assert.NotNil(t, got.Autores)
	assert.NotNil(t, got.Comentarios)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"titulo":"Solo","fechaPublicacion":null,"autores":[],"comentarios":[]}`, string(raw))
}

func TestToAutorDTOConLibros(t *testing.T) {
	t.Parallel()

	date := time.Date(1944, 1, 1, 0, 0, 0, 0, time.UTC)
	author := domain.Author{
		ID:   4,
		Name: "Borges",
		Books: []domain.AuthorBook{
			{AuthorID: 4, BookID: 10, Book: &domain.Book{ID: 10, Title: "Ficciones", PublicationDate: &date}},
			{AuthorID: 4, BookID: 11},
		},
	}

	got := ToAutorDTOConLibros(author)
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, "Borges", got.Nombre)
	require.Len(t, got.Libros, 2)
	assert.Equal(t, "Ficciones", got.Libros[0].Titulo)
	assert.Equal(t, "1944-01-01", got.Libros[0].FechaPublicacion.Format(DateLayout))
	assert.Equal(t, 11, got.Libros[1].ID)

	empty := ToAutorDTOConLibros(domain.Author{ID: 5, Name: "Nuevo"})
	assert.NotNil(t, empty.Libros)
	assert.Empty(t, empty.Libros)
}

func TestBookFromCreation(t *testing.T) {
	t.Parallel()

	fecha := NewFecha(time.Date(1963, 6, 28, 15, 0, 0, 0, time.UTC))
	book := BookFromCreation(LibroCreacionDTO{Titulo: "Rayuela", FechaPublicacion: &fecha, AutoresIds: []int{7, 3, 9}})

	assert.Equal(t, "Rayuela", book.Title)
	require.NotNil(t, book.PublicationDate)
	assert.Equal(t, "1963-06-28", book.PublicationDate.Format(DateLayout))
	require.Len(t, book.Authors, 3)
	assert.Equal(t, []int{7, 3, 9}, book.AuthorIDs())
	for _, ab := range book.Authors {
		assert.Zero(t, ab.Order)
	}

	book.StampAuthorOrder()
	for i, ab := range book.Authors {
		assert.Equal(t, i, ab.Order)
	}
}

func TestListProjectionsPreserveOrder(t *testing.T) {
	t.Parallel()

	authors := ToAutorDTOs([]domain.Author{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}})
	assert.Equal(t, []int{3, 1}, []int{authors[0].ID, authors[1].ID})

	books := ToLibroDTOs(nil)
	assert.NotNil(t, books)

	userID := uuid.New()
	comments := ToComentarioDTOs([]domain.Comment{{ID: 2, Content: "x", UserID: userID}})
	require.Len(t, comments, 1)
	assert.Equal(t, userID, comments[0].UsuarioID)
}

func TestAutorDTO_LinksOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	a := ToAutorDTO(domain.Author{ID: 1, Name: "Borges"})
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nombre":"Borges"}`, string(raw))

	a.Enlaces = []DatoHATEOAS{{Enlace: "http://x/api/autores/1", Descripcion: "self", Metodo: "GET"}}
	raw, err = json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nombre":"Borges","enlaces":[{"enlace":"http://x/api/autores/1","descripcion":"self","metodo":"GET"}]}`, string(raw))
}
