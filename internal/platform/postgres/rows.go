package postgres

import (
	"database/sql"
	"time"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/google/uuid"
)

type authorRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

func (r authorRow) toDomain() domain.Author {
	return domain.Author{ID: r.ID, Name: r.Name}
}

type bookRow struct {
	ID              int          `db:"id"`
	Title           string       `db:"title"`
	PublicationDate sql.NullTime `db:"publication_date"`
}

func (r bookRow) toDomain() domain.Book {
	b := domain.Book{ID: r.ID, Title: r.Title}
	if r.PublicationDate.Valid {
		d := r.PublicationDate.Time
		b.PublicationDate = &d
	}
	return b
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// authorBookRow is a join row. The name or title column is filled from
// whichever side the query joined.
type authorBookRow struct {
	AuthorID        int            `db:"author_id"`
	BookID          int            `db:"book_id"`
	Order           int            `db:"order"`
	AuthorName      sql.NullString `db:"author_name"`
	BookTitle       sql.NullString `db:"book_title"`
	PublicationDate sql.NullTime   `db:"publication_date"`
}

type commentRow struct {
	ID        int       `db:"id"`
	Content   string    `db:"content"`
	BookID    int       `db:"book_id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		Content:   r.Content,
		BookID:    r.BookID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
	}
}

type userRow struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	IsAdmin        bool      `db:"is_admin"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:             r.ID,
		Email:          r.Email,
		HashedPassword: r.HashedPassword,
		IsAdmin:        r.IsAdmin,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
