package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/brayannhc07/webapiautores/internal/store"
	"github.com/jmoiron/sqlx"
)

// MockCommentStore implements store.CommentStore in memory.
type MockCommentStore struct {
	mu     sync.Mutex
	nextID int

	// Comments holds the stored comments by ID.
	Comments map[int]*domain.Comment

	// CreateFn overrides Create when set.
	CreateFn func(ctx context.Context, comment *domain.Comment) error
}

// NewMockCommentStore creates an empty in-memory comment store.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{Comments: make(map[int]*domain.Comment)}
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// Create implements store.CommentStore.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	comment.ID = m.nextID
	comment.CreatedAt = time.Now().UTC()
	stored := *comment
	m.Comments[comment.ID] = &stored
	return nil
}

// GetByID implements store.CommentStore.
func (m *MockCommentStore) GetByID(ctx context.Context, bookID, id int) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok || c.BookID != bookID {
		return nil, store.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

// ListByBook implements store.CommentStore.
func (m *MockCommentStore) ListByBook(ctx context.Context, bookID int) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range m.Comments {
		if c.BookID == bookID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update implements store.CommentStore.
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[comment.ID]
	if !ok || c.BookID != comment.BookID {
		return store.ErrCommentNotFound
	}
	c.Content = comment.Content
	c.UserID = comment.UserID
	return nil
}

// WithTx implements store.CommentStore.
func (m *MockCommentStore) WithTx(tx *sqlx.Tx) store.CommentStore {
	return m
}
