package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/store"
)

// MockSuggestionStore implements store.SuggestionStore for testing.
type MockSuggestionStore struct {
	CreateFn  func(ctx context.Context, g *domain.GiftSuggestion) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.GiftSuggestion, error)

	mu          sync.Mutex
	Suggestions map[uuid.UUID]*domain.GiftSuggestion
	CreateCalls int
}

var _ store.SuggestionStore = (*MockSuggestionStore)(nil)

// Create implements store.SuggestionStore, assigning RecordID and CreatedAt.
func (m *MockSuggestionStore) Create(ctx context.Context, g *domain.GiftSuggestion) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Suggestions == nil {
		m.Suggestions = make(map[uuid.UUID]*domain.GiftSuggestion)
	}
	g.RecordID = uuid.New()
	g.CreatedAt = time.Now().UTC()
	stored := *g
	m.Suggestions[g.RecordID] = &stored
	return nil
}

// GetByID implements store.SuggestionStore.
func (m *MockSuggestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.GiftSuggestion, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.Suggestions[id]; ok {
		return g, nil
	}
	return nil, store.ErrSuggestionNotFound
}

// WithTx implements store.SuggestionStore. The mock ignores the transaction.
func (m *MockSuggestionStore) WithTx(*sql.Tx) store.SuggestionStore {
	return m
}
