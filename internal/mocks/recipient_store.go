package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/store"
)

// MockRecipientStore implements store.RecipientStore for testing.
// Without function overrides it keeps recipients in insertion order.
type MockRecipientStore struct {
	CreateFn           func(ctx context.Context, r *domain.Recipient) error
	ListByUserFn       func(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error)
	FindLatestByNameFn func(ctx context.Context, userID uuid.UUID, name string) (*domain.Recipient, error)

	mu         sync.Mutex
	Recipients []*domain.Recipient
}

var _ store.RecipientStore = (*MockRecipientStore)(nil)

// Create implements store.RecipientStore.
func (m *MockRecipientStore) Create(ctx context.Context, r *domain.Recipient) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Recipients = append(m.Recipients, r)
	return nil
}

// ListByUser implements store.RecipientStore, newest first.
func (m *MockRecipientStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Recipient, 0)
	for i := len(m.Recipients) - 1; i >= 0; i-- {
		if m.Recipients[i].UserID == userID {
			out = append(out, m.Recipients[i])
		}
	}
	return out, nil
}

// FindLatestByName implements store.RecipientStore.
func (m *MockRecipientStore) FindLatestByName(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Recipient, error) {
	if m.FindLatestByNameFn != nil {
		return m.FindLatestByNameFn(ctx, userID, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Recipients) - 1; i >= 0; i-- {
		r := m.Recipients[i]
		if r.UserID == userID && r.Name == name {
			return r, nil
		}
	}
	return nil, store.ErrRecipientNotFound
}

// WithTx implements store.RecipientStore. The mock ignores the transaction.
func (m *MockRecipientStore) WithTx(*sql.Tx) store.RecipientStore {
	return m
}
