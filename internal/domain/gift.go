package domain

import (
	"time"

	"github.com/google/uuid"
)

// GiftCandidate is a gift idea as returned by the language model, before
// it is given an id, image and link.
type GiftCandidate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// GiftSuggestion is a candidate after enrichment.
//
// ID is the position in the generation batch ("gift-1", "gift-2", ...).
// RecordID and CreatedAt are assigned by the store when the suggestion is persisted.
type GiftSuggestion struct {
	RecordID      uuid.UUID `json:"record_id"`
	ID            string    `json:"id"`
	RecipientName string    `json:"recipient_name"`
	GiftCandidate
	ImageURL  string    `json:"image_url"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields every persisted suggestion must carry.
func (s *GiftSuggestion) Validate() error {
	switch {
	case s.Name == "":
		return NewValidationError("name", "cannot be empty", ErrValidation)
	case s.Description == "":
		return NewValidationError("description", "cannot be empty", ErrValidation)
	case s.Category == "":
		return NewValidationError("category", "cannot be empty", ErrValidation)
	case s.Price < 0:
		return NewValidationError("price", "cannot be negative", ErrValidation)
	case s.ImageURL == "":
		return NewValidationError("image_url", "cannot be empty", ErrValidation)
	case s.Link == "":
		return NewValidationError("link", "cannot be empty", ErrValidation)
	}
	return nil
}

// SavedGift records that a user bookmarked a suggestion.
// Suggestion is populated by list queries and nil otherwise.
type SavedGift struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	SuggestionID uuid.UUID       `json:"suggestion_id"`
	Suggestion   *GiftSuggestion `json:"suggestion,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewSavedGift creates a SavedGift linking userID to the persisted suggestion.
func NewSavedGift(userID, suggestionID uuid.UUID) (*SavedGift, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("user_id", "cannot be empty", ErrEmptyUserID)
	}
	if suggestionID == uuid.Nil {
		return nil, NewValidationError("suggestion_id", "cannot be empty", ErrInvalidID)
	}
	return &SavedGift{
		ID:           uuid.New(),
		UserID:       userID,
		SuggestionID: suggestionID,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
