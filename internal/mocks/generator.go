package mocks

import (
	"context"
	"sync"

	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) ([]domain.GiftCandidate, error)

	// Default response values
	Candidates []domain.GiftCandidate
	Err        error

	mu      sync.Mutex
	prompts []string
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, prompt string) ([]domain.GiftCandidate, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Candidates, m.Err
}

// Prompts returns the prompts Generate was called with, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// MockImageFinder implements generation.ImageFinder for testing.
// It is safe for concurrent use since lookups fan out.
type MockImageFinder struct {
	// FindImageFn allows test cases to mock the FindImage behavior
	FindImageFn func(ctx context.Context, query string) string

	// Images maps query to URL when FindImageFn is nil; unknown queries yield "".
	Images map[string]string

	mu      sync.Mutex
	queries []string
}

var _ generation.ImageFinder = (*MockImageFinder)(nil)

// FindImage implements the generation.ImageFinder interface
func (m *MockImageFinder) FindImage(ctx context.Context, query string) string {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.FindImageFn != nil {
		return m.FindImageFn(ctx, query)
	}
	return m.Images[query]
}

// Queries returns every query FindImage received. Order is not guaranteed.
func (m *MockImageFinder) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}
