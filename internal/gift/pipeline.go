package gift

import (
	"context"
	"log/slog"

	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/generation"
	"github.com/presently/presently-api/internal/platform/logger"
	"golang.org/x/sync/errgroup"
)

// Pipeline produces gift suggestions for a recipient.
type Pipeline struct {
	generator generation.Generator
	images    generation.ImageFinder
	assembler *Assembler
	logger    *slog.Logger
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(
	generator generation.Generator,
	images generation.ImageFinder,
	assembler *Assembler,
	log *slog.Logger,
) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		generator: generator,
		images:    images,
		assembler: assembler,
		logger:    log.With(slog.String("component", "gift_pipeline")),
	}
}

// Suggest runs the whole pipeline for recipient. The returned error, if any,
// is the *generation.GenerationError reported by the generator.
func (p *Pipeline) Suggest(ctx context.Context, recipient domain.Recipient) ([]domain.GiftSuggestion, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	candidates, err := p.generator.Generate(ctx, BuildPrompt(recipient))
	if err != nil {
		return nil, err
	}

	images := p.findImages(ctx, candidates)
	suggestions := p.assembler.Assemble(candidates, images, recipient.Name)

	log.InfoContext(ctx, "gift suggestions assembled",
		slog.String("recipient", recipient.Name),
		slog.Int("count", len(suggestions)))
	return suggestions, nil
}

// findImages looks up one image per candidate concurrently and waits for all of
// them. Each lookup writes only its own slot.
func (p *Pipeline) findImages(ctx context.Context, candidates []domain.GiftCandidate) []string {
	images := make([]string, len(candidates))

	var g errgroup.Group
	for i, c := range candidates {
		g.Go(func() error {
			images[i] = p.images.FindImage(ctx, c.Name)
			return nil
		})
	}
	_ = g.Wait() // lookups never fail; misses are ""

	return images
}
