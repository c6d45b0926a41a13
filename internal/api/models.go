package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	User *UserResponse `json:"user,omitempty"`

	// AccessToken is the JWT used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the RFC 3339 timestamp when the access token expires
	ExpiresAt string `json:"expires_at"`
}

func newUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{ID: u.ID, Email: u.Email, Role: u.Role}
}

// BudgetRequest is the spend range of a recipient.
type BudgetRequest struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0,gtefield=Min"`
}

// CreateRecipientRequest defines the payload for creating a recipient profile.
type CreateRecipientRequest struct {
	Name         string        `json:"name"         validate:"required,max=100"`
	Age          int           `json:"age"          validate:"gte=0,lte=150"`
	Gender       string        `json:"gender"       validate:"required,oneof=male female other"`
	Relationship string        `json:"relationship" validate:"required,max=100"`
	Interests    []string      `json:"interests"    validate:"max=20,dive,required,max=100"`
	Occasion     string        `json:"occasion"     validate:"required,max=100"`
	Budget       BudgetRequest `json:"budget"`
}

// toDomain converts the request into recipient profile fields.
func (r CreateRecipientRequest) toDomain() domain.Recipient {
	return domain.Recipient{
		Name:         r.Name,
		Age:          r.Age,
		Gender:       domain.Gender(r.Gender),
		Relationship: r.Relationship,
		Interests:    r.Interests,
		Occasion:     r.Occasion,
		Budget:       domain.Budget{Min: r.Budget.Min, Max: r.Budget.Max},
	}
}

// GenerateSuggestionsRequest names the recipient to generate gifts for.
type GenerateSuggestionsRequest struct {
	Name string `json:"name" validate:"required"`
}

// SuggestionsResponse wraps a generated batch.
type SuggestionsResponse struct {
	Gifts []domain.GiftSuggestion `json:"gifts"`
}

// SaveGiftRequest defines the payload for bookmarking a suggestion.
// SuggestionID is the suggestion's record_id.
type SaveGiftRequest struct {
	SuggestionID string `json:"suggestion_id" validate:"required,uuid"`
}

// SavedGiftResponse is a saved gift as returned to clients.
type SavedGiftResponse struct {
	ID         uuid.UUID              `json:"id"`
	Suggestion *domain.GiftSuggestion `json:"suggestion,omitempty"`
	SavedAt    time.Time              `json:"saved_at"`
}

func newSavedGiftResponse(sg *domain.SavedGift) SavedGiftResponse {
	return SavedGiftResponse{ID: sg.ID, Suggestion: sg.Suggestion, SavedAt: sg.CreatedAt}
}
