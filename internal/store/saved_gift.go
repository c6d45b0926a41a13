package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
)

// SavedGiftStore defines the interface for user-saved gifts.
type SavedGiftStore interface {
	// Create saves a bookmark. Returns ErrDuplicate if the user already saved
	// the suggestion, or ErrSuggestionNotFound if it does not exist.
	Create(ctx context.Context, saved *domain.SavedGift) error

	// ListByUser returns the user's saved gifts with Suggestion populated, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error)
}
