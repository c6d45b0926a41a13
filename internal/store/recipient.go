package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
)

// RecipientStore defines the interface for recipient profile persistence.
type RecipientStore interface {
	// Create saves a new recipient profile.
	Create(ctx context.Context, recipient *domain.Recipient) error

	// ListByUser returns all recipients owned by userID, newest first.
	// Returns an empty slice if there are none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error)

	// FindLatestByName returns the newest recipient owned by userID with the given name.
	// Returns ErrRecipientNotFound if there is none.
	FindLatestByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Recipient, error)

	// WithTx returns a RecipientStore bound to the given transaction.
	WithTx(tx *sql.Tx) RecipientStore
}
