package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/presently/presently-api/internal/config"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/generation"
	"github.com/presently/presently-api/internal/platform/logger"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by the generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to propose gift candidates.
type GeminiGenerator struct {
	logger *slog.Logger
	models contentGenerator
	model  string
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator backed by a genai client built from cfg.
func NewGeminiGenerator(ctx context.Context, log *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		cc.HTTPOptions.BaseURL = base
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(log, client.Models, cfg.ModelName), nil
}

func newGenerator(log *slog.Logger, models contentGenerator, model string) *GeminiGenerator {
	return &GeminiGenerator{
		logger: log.With(slog.String("component", "gemini_generator")),
		models: models,
		model:  strings.TrimSpace(model),
	}
}

// Generate implements generation.Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) ([]domain.GiftCandidate, error) {
	log := logger.FromContextOrDefault(ctx, g.logger).With(slog.String("model", g.model))

	log.DebugContext(ctx, "requesting gift suggestions", slog.Int("prompt_length", len(prompt)))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		CandidateCount:   1,
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		kind := ClassifyProviderError(err)
		genErr := generation.NewGenerationError(kind, err)
		log.ErrorContext(ctx, "gift generation request failed",
			slog.String("kind", kind.String()),
			slog.String("error", genErr.Detail()))
		return nil, genErr
	}

	candidates := parseCandidates(log, responseText(resp))
	log.InfoContext(ctx, "gift suggestions generated", slog.Int("count", len(candidates)))
	return candidates, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// parseCandidates decodes the model reply. It never fails: unusable input
// produces an empty slice and incomplete gifts are skipped.
func parseCandidates(log *slog.Logger, text string) []domain.GiftCandidate {
	candidates := make([]domain.GiftCandidate, 0)

	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn("model returned an empty reply")
		return candidates
	}

	var reply giftsReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		log.Warn("model reply is not valid JSON", slog.String("error", err.Error()))
		return candidates
	}
	if reply.Gifts == nil {
		log.Warn("model reply has no gifts array")
		return candidates
	}

	for i, raw := range reply.Gifts {
		var gift giftSchema
		if err := json.Unmarshal(raw, &gift); err != nil {
			log.Warn("skipping undecodable gift", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		candidate, ok := gift.toCandidate()
		if !ok {
			log.Warn("skipping incomplete gift", slog.Int("index", i))
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func (s giftSchema) toCandidate() (domain.GiftCandidate, bool) {
	if s.Name == nil || s.Description == nil || s.Price == nil || s.Category == nil {
		return domain.GiftCandidate{}, false
	}
	c := domain.GiftCandidate{
		Name:        strings.TrimSpace(*s.Name),
		Description: strings.TrimSpace(*s.Description),
		Price:       *s.Price,
		Category:    strings.TrimSpace(*s.Category),
	}
	if c.Name == "" || c.Description == "" || c.Category == "" || c.Price < 0 {
		return domain.GiftCandidate{}, false
	}
	return c, true
}
