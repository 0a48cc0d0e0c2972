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

// MockAuthorStore implements store.AuthorStore in memory.
type MockAuthorStore struct {
	mu     sync.Mutex
	nextID int

	// Authors holds the stored authors by ID.
	Authors map[int]*domain.Author

	// Function fields override the in-memory behavior when set.
	CreateFn       func(ctx context.Context, author *domain.Author) error
	GetByIDFn      func(ctx context.Context, id int) (*domain.Author, error)
	CountFn        func(ctx context.Context) (int, error)
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	UpdateFn       func(ctx context.Context, author *domain.Author) error
	DeleteFn       func(ctx context.Context, id int) error

	// CreateCalls counts successful and failed Create invocations.
	CreateCalls int
}

// NewMockAuthorStore creates an empty in-memory author store.
func NewMockAuthorStore() *MockAuthorStore {
	return &MockAuthorStore{Authors: make(map[int]*domain.Author)}
}

var _ store.AuthorStore = (*MockAuthorStore)(nil)

// Seed stores authors with the given names and returns them in order.
func (m *MockAuthorStore) Seed(names ...string) []*domain.Author {
	out := make([]*domain.Author, 0, len(names))
	for _, n := range names {
		a := &domain.Author{Name: n}
		_ = m.Create(context.Background(), a)
		out = append(out, a)
	}
	return out
}

// Create implements store.AuthorStore.
func (m *MockAuthorStore) Create(ctx context.Context, author *domain.Author) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, author)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	author.ID = m.nextID
	stored := *author
	m.Authors[author.ID] = &stored
	return nil
}

// GetByID implements store.AuthorStore.
func (m *MockAuthorStore) GetByID(ctx context.Context, id int) (*domain.Author, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	cp := *a
	if cp.Books == nil {
		cp.Books = []domain.AuthorBook{}
	}
	return &cp, nil
}

func (m *MockAuthorStore) sorted(filter func(*domain.Author) bool) []domain.Author {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Author, 0, len(m.Authors))
	for _, a := range m.Authors {
		if filter == nil || filter(a) {
			out = append(out, domain.Author{ID: a.ID, Name: a.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SearchByName implements store.AuthorStore.
func (m *MockAuthorStore) SearchByName(ctx context.Context, name string) ([]domain.Author, error) {
	return m.sorted(func(a *domain.Author) bool { return strings.Contains(a.Name, name) }), nil
}

// List implements store.AuthorStore.
func (m *MockAuthorStore) List(ctx context.Context, page pagination.Request) ([]domain.Author, error) {
	authors := m.sorted(nil)
	sort.SliceStable(authors, func(i, j int) bool { return authors[i].Name < authors[j].Name })
	return pagination.Slice(authors, page), nil
}

// ListAll implements store.AuthorStore.
func (m *MockAuthorStore) ListAll(ctx context.Context) ([]domain.Author, error) {
	return m.sorted(nil), nil
}

// Count implements store.AuthorStore.
func (m *MockAuthorStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Authors), nil
}

// Exists implements store.AuthorStore.
func (m *MockAuthorStore) Exists(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Authors[id]
	return ok, nil
}

// ExistsByName implements store.AuthorStore.
func (m *MockAuthorStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}
	return len(m.sorted(func(a *domain.Author) bool { return a.Name == name })) > 0, nil
}

// ExistingIDs implements store.AuthorStore.
func (m *MockAuthorStore) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[int]bool)
	found := []int{}
	for _, id := range ids {
		if _, ok := m.Authors[id]; ok && !seen[id] {
			seen[id] = true
			found = append(found, id)
		}
	}
	sort.Ints(found)
	return found, nil
}

// Update implements store.AuthorStore.
func (m *MockAuthorStore) Update(ctx context.Context, author *domain.Author) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, author)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Authors[author.ID]
	if !ok {
		return store.ErrAuthorNotFound
	}
	a.Name = author.Name
	return nil
}

// Delete implements store.AuthorStore.
func (m *MockAuthorStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Authors[id]; !ok {
		return store.ErrAuthorNotFound
	}
	delete(m.Authors, id)
	return nil
}

// WithTx implements store.AuthorStore.
func (m *MockAuthorStore) WithTx(tx *sqlx.Tx) store.AuthorStore {
	return m
}
