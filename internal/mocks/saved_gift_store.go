package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/store"
)

// MockSavedGiftStore implements store.SavedGiftStore for testing.
type MockSavedGiftStore struct {
	CreateFn     func(ctx context.Context, sg *domain.SavedGift) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error)

	mu    sync.Mutex
	Saved []*domain.SavedGift
}

var _ store.SavedGiftStore = (*MockSavedGiftStore)(nil)

// Create implements store.SavedGiftStore.
func (m *MockSavedGiftStore) Create(ctx context.Context, sg *domain.SavedGift) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, sg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = append(m.Saved, sg)
	return nil
}

// ListByUser implements store.SavedGiftStore, newest first.
func (m *MockSavedGiftStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.SavedGift, 0)
	for i := len(m.Saved) - 1; i >= 0; i-- {
		if m.Saved[i].UserID == userID {
			out = append(out, m.Saved[i])
		}
	}
	return out, nil
}
