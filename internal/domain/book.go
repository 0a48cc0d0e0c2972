package domain

import (
	"sort"
	"time"
	"unicode/utf8"
)

// MaxBookTitleLength is the longest book title accepted, in characters.
const MaxBookTitleLength = 250

// Book is a title written by one or more authors.
type Book struct {
	ID              int
	Title           string
	PublicationDate *time.Time

	// Authors is the byline. Its order on the wire is defined by AuthorBook.Order,
	// never by the slice order returned from storage.
	Authors  []AuthorBook
	Comments []Comment
}

// AuthorBook is the join row between an author and a book.
type AuthorBook struct {
	AuthorID int
	BookID   int
	Order    int

	// Author and Book are the referenced entities when the store loaded them.
	Author *Author
	Book   *Book
}

// Validate checks the book's scalar fields against the domain rules.
func (b *Book) Validate() error {
	if b.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	if utf8.RuneCountInString(b.Title) > MaxBookTitleLength {
		return NewValidationError("title", "is too long", ErrValidation)
	}
	if !FirstLetterUppercase(b.Title) {
		return NewValidationError("title", "must start with an uppercase letter", ErrFirstLetterLowercase)
	}
	return nil
}

// StampAuthorOrder overwrites Order on every join row with its position in
// the Authors slice. It must run after every create or update of the author list.
func (b *Book) StampAuthorOrder() {
	for i := range b.Authors {
		b.Authors[i].Order = i
		b.Authors[i].BookID = b.ID
	}
}

// AuthorIDs returns the author ids of the join rows in slice order.
func (b *Book) AuthorIDs() []int {
	ids := make([]int, 0, len(b.Authors))
	for _, ab := range b.Authors {
		ids = append(ids, ab.AuthorID)
	}
	return ids
}

// AuthorsByOrder returns a copy of the join rows sorted ascending by Order.
// The receiver is left untouched.
func (b *Book) AuthorsByOrder() []AuthorBook {
	sorted := make([]AuthorBook, len(b.Authors))
	copy(sorted, b.Authors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}
