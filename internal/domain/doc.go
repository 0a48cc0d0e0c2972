// Package domain contains the core entities of the authors/books API: authors,
// books, the ordered author-book association, comments and user accounts.
// It has no knowledge of HTTP or of the storage engine.
package domain
