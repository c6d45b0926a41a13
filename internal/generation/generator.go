package generation

import (
	"context"

	"github.com/presently/presently-api/internal/domain"
)

// Generator asks a language model for gift ideas.
type Generator interface {
	// Generate sends prompt to the model and returns the candidates it proposed.
	//
	// A reply that cannot be parsed, lacks the gifts array, or contains only
	// incomplete candidates yields an empty slice and no error. The only error
	// returned is a *GenerationError.
	Generate(ctx context.Context, prompt string) ([]domain.GiftCandidate, error)
}

// ImageFinder looks up a representative image for a search query.
type ImageFinder interface {
	// FindImage returns an image URL for query, or "" when nothing was found or
	// the lookup failed. Failures are logged by the implementation, never returned.
	FindImage(ctx context.Context, query string) string
}
