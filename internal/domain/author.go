package domain

import "unicode/utf8"

// MaxAuthorNameLength is the longest author name accepted, in characters.
const MaxAuthorNameLength = 120

// Author is a person credited on one or more books.
type Author struct {
	ID   int
	Name string

	// Books holds the author's book associations. It is only populated by
	// store queries that load the detail view.
	Books []AuthorBook
}

// Validate checks the author's name against the domain rules.
func (a *Author) Validate() error {
	if a.Name == "" {
		return NewValidationError("name", "is required", ErrEmptyName)
	}
	if utf8.RuneCountInString(a.Name) > MaxAuthorNameLength {
		return NewValidationError("name", "is too long", ErrValidation)
	}
	if !FirstLetterUppercase(a.Name) {
		return NewValidationError("name", "must start with an uppercase letter", ErrFirstLetterLowercase)
	}
	return nil
}
