package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/pagination"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jmoiron/sqlx"
)

// MockBookStore implements store.BookStore in memory.
type MockBookStore struct {
	mu     sync.Mutex
	nextID int

	// Books holds the stored books by ID, join rows included.
	Books map[int]*domain.Book

	// AuthorStore, when set, supplies author names for GetByID.
	AuthorStore *MockAuthorStore
	// CommentStore, when set, supplies comments for GetByID.
	CommentStore *MockCommentStore

	// Function fields override the in-memory behavior when set.
	CreateFn        func(ctx context.Context, book *domain.Book) error
	UpdateFn        func(ctx context.Context, book *domain.Book) error
	UpdateDetailsFn func(ctx context.Context, book *domain.Book) error

	// Call counters for write paths.
	CreateCalls        int
	UpdateCalls        int
	UpdateDetailsCalls int
}

// NewMockBookStore creates an empty in-memory book store.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{Books: make(map[int]*domain.Book)}
}

var _ store.BookStore = (*MockBookStore)(nil)

func cloneBook(b *domain.Book) domain.Book {
	cp := *b
	cp.Authors = append([]domain.AuthorBook(nil), b.Authors...)
	return cp
}

// Create implements store.BookStore.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	book.ID = m.nextID
	for i := range book.Authors {
		book.Authors[i].BookID = book.ID
	}
	stored := cloneBook(book)
	m.Books[book.ID] = &stored
	return nil
}

// GetByID implements store.BookStore.
func (m *MockBookStore) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	m.mu.Lock()
	b, ok := m.Books[id]
	if !ok {
		m.mu.Unlock()
		return nil, store.ErrBookNotFound
	}
	cp := cloneBook(b)
	m.mu.Unlock()

	for i := range cp.Authors {
		author := domain.Author{ID: cp.Authors[i].AuthorID}
		if m.AuthorStore != nil {
			if a, err := m.AuthorStore.GetByID(ctx, author.ID); err == nil {
				author.Name = a.Name
			}
		}
		cp.Authors[i].Author = &author
	}

	cp.Comments = []domain.Comment{}
	if m.CommentStore != nil {
		comments, _ := m.CommentStore.ListByBook(ctx, id)
		cp.Comments = comments
	}
	return &cp, nil
}

func (m *MockBookStore) sorted(filter func(*domain.Book) bool) []domain.Book {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Book, 0, len(m.Books))
	for _, b := range m.Books {
		if filter == nil || filter(b) {
			out = append(out, domain.Book{ID: b.ID, Title: b.Title, PublicationDate: b.PublicationDate})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SearchByTitle implements store.BookStore.
func (m *MockBookStore) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return m.sorted(func(b *domain.Book) bool { return strings.Contains(b.Title, title) }), nil
}

// List implements store.BookStore.
func (m *MockBookStore) List(ctx context.Context, page pagination.Request) ([]domain.Book, error) {
	return pagination.Slice(m.sorted(nil), page), nil
}

// Count implements store.BookStore.
func (m *MockBookStore) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Books), nil
}

// Exists implements store.BookStore.
func (m *MockBookStore) Exists(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Books[id]
	return ok, nil
}

// Update implements store.BookStore.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Books[book.ID]; !ok {
		return store.ErrBookNotFound
	}
	stored := cloneBook(book)
	stored.Comments = nil
	m.Books[book.ID] = &stored
	return nil
}

// UpdateDetails implements store.BookStore.
func (m *MockBookStore) UpdateDetails(ctx context.Context, book *domain.Book) error {
	m.mu.Lock()
	m.UpdateDetailsCalls++
	m.mu.Unlock()
	if m.UpdateDetailsFn != nil {
		return m.UpdateDetailsFn(ctx, book)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Books[book.ID]
	if !ok {
		return store.ErrBookNotFound
	}
	b.Title = book.Title
	b.PublicationDate = book.PublicationDate
	return nil
}

// Delete implements store.BookStore.
func (m *MockBookStore) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(m.Books, id)
	return nil
}

// WithTx implements store.BookStore.
func (m *MockBookStore) WithTx(tx *sqlx.Tx) store.BookStore {
	return m
}
