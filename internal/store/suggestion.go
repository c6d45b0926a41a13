package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
)

// SuggestionStore defines the interface for gift suggestion persistence.
type SuggestionStore interface {
	// Create persists a suggestion, assigning RecordID and CreatedAt.
	// Returns ErrInvalidEntity if the suggestion misses a required field.
	Create(ctx context.Context, suggestion *domain.GiftSuggestion) error

	// GetByID retrieves a persisted suggestion.
	// Returns ErrSuggestionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GiftSuggestion, error)

	// WithTx returns a SuggestionStore bound to the given transaction.
	WithTx(tx *sql.Tx) SuggestionStore
}
