package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/presently/presently-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	GetUserFn        func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	CreateUserFn     func(ctx context.Context, email, password string) (*domain.User, error)
}

// GetUser implements service.UserService.
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.GetUserFn(ctx, userID)
}

// GetUserByEmail implements service.UserService.
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetUserByEmailFn(ctx, email)
}

// CreateUser implements service.UserService.
func (m *MockUserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	return m.CreateUserFn(ctx, email, password)
}

// MockGiftService implements service.GiftService for testing.
// Calling a method whose function field is nil panics, which flags an unexpected call.
type MockGiftService struct {
	CreateRecipientFn     func(ctx context.Context, userID uuid.UUID, profile domain.Recipient) (*domain.Recipient, error)
	ListRecipientsFn      func(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error)
	GenerateSuggestionsFn func(ctx context.Context, userID uuid.UUID, name string) ([]domain.GiftSuggestion, error)
	SaveGiftFn            func(ctx context.Context, userID, suggestionID uuid.UUID) (*domain.SavedGift, error)
	ListSavedGiftsFn      func(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error)
}

// CreateRecipient implements service.GiftService.
func (m *MockGiftService) CreateRecipient(
	ctx context.Context,
	userID uuid.UUID,
	profile domain.Recipient,
) (*domain.Recipient, error) {
	return m.CreateRecipientFn(ctx, userID, profile)
}

// ListRecipients implements service.GiftService.
func (m *MockGiftService) ListRecipients(ctx context.Context, userID uuid.UUID) ([]*domain.Recipient, error) {
	return m.ListRecipientsFn(ctx, userID)
}

// GenerateSuggestions implements service.GiftService.
func (m *MockGiftService) GenerateSuggestions(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) ([]domain.GiftSuggestion, error) {
	return m.GenerateSuggestionsFn(ctx, userID, name)
}

// SaveGift implements service.GiftService.
func (m *MockGiftService) SaveGift(ctx context.Context, userID, suggestionID uuid.UUID) (*domain.SavedGift, error) {
	return m.SaveGiftFn(ctx, userID, suggestionID)
}

// ListSavedGifts implements service.GiftService.
func (m *MockGiftService) ListSavedGifts(ctx context.Context, userID uuid.UUID) ([]*domain.SavedGift, error) {
	return m.ListSavedGiftsFn(ctx, userID)
}
