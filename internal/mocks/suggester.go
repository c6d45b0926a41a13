package mocks

import (
	"context"

	"github.com/presently/presently-api/internal/domain"
)

// MockSuggester implements service.Suggester for testing
type MockSuggester struct {
	SuggestFn func(ctx context.Context, recipient domain.Recipient) ([]domain.GiftSuggestion, error)

	// Default response values
	Suggestions []domain.GiftSuggestion
	Err         error

	// Calls records the recipients Suggest was called with
	Calls []domain.Recipient
}

// Suggest implements the service.Suggester interface. Each call returns a fresh
// copy of Suggestions so callers can mutate the result.
func (m *MockSuggester) Suggest(ctx context.Context, recipient domain.Recipient) ([]domain.GiftSuggestion, error) {
	m.Calls = append(m.Calls, recipient)
	if m.SuggestFn != nil {
		return m.SuggestFn(ctx, recipient)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]domain.GiftSuggestion(nil), m.Suggestions...), nil
}
