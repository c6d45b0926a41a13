package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/presently/presently-api/internal/config"
	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels is a contentGenerator that replays a canned reply.
type fakeModels struct {
	reply string
	err   error

	gotModel  string
	gotPrompt string
	gotConfig *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotConfig = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
		want  []domain.GiftCandidate
	}{
		{
			name: "well formed",
			reply: `{"gifts":[
				{"name":"Chess Set","description":"Walnut board","price":899,"category":"Games"},
				{"name":"Pour-over Kit","description":"For coffee lovers","price":650.5,"category":"Kitchen"}]}`,
			want: []domain.GiftCandidate{
				{Name: "Chess Set", Description: "Walnut board", Price: 899, Category: "Games"},
				{Name: "Pour-over Kit", Description: "For coffee lovers", Price: 650.5, Category: "Kitchen"},
			},
		},
		{name: "empty gifts array", reply: `{"gifts":[]}`, want: []domain.GiftCandidate{}},
		{name: "unparsable reply", reply: `Here are some gifts: chess set, coffee`, want: []domain.GiftCandidate{}},
		{name: "missing gifts field", reply: `{"ideas":[{"name":"x"}]}`, want: []domain.GiftCandidate{}},
		{name: "empty reply", reply: "", want: []domain.GiftCandidate{}},
		{
			name: "incomplete candidates dropped",
			reply: `{"gifts":[
				{"name":"Chess Set","description":"Walnut board","price":899,"category":"Games"},
				{"name":"No Price","description":"d","category":"c"},
				{"description":"No name","price":10,"category":"c"},
				{"name":"Bad Price","description":"d","price":"cheap","category":"c"},
				{"name":"Free Sample","description":"d","price":0,"category":"c"}]}`,
			want: []domain.GiftCandidate{
				{Name: "Chess Set", Description: "Walnut board", Price: 899, Category: "Games"},
				{Name: "Free Sample", Description: "d", Price: 0, Category: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			fake := &fakeModels{reply: tt.reply}
			g := newGenerator(testLogger(&buf), fake, "gemini-test")

			got, err := g.Generate(context.Background(), "find gifts")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateRequestShape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fake := &fakeModels{reply: `{"gifts":[]}`}
	g := newGenerator(testLogger(&buf), fake, " gemini-test ")

	_, err := g.Generate(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "gemini-test", fake.gotModel)
	assert.Equal(t, "the prompt", fake.gotPrompt)
	require.NotNil(t, fake.gotConfig)
	assert.Equal(t, "application/json", fake.gotConfig.ResponseMIMEType)
	assert.Same(t, responseSchema, fake.gotConfig.ResponseSchema)
}

func TestGenerateProviderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind generation.ErrorKind
		wantIs   error
	}{
		{
			name:     "quota exhausted",
			err:      genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "Quota exceeded for project"},
			wantKind: generation.QuotaExceeded,
			wantIs:   generation.ErrQuotaExceeded,
		},
		{
			name:     "unauthorized",
			err:      genai.APIError{Code: 401, Status: "UNAUTHENTICATED", Message: "API key not valid"},
			wantKind: generation.ProviderFailure,
			wantIs:   generation.ErrProviderFailure,
		},
		{
			name:     "network",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: generation.ProviderFailure,
			wantIs:   generation.ErrProviderFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			g := newGenerator(testLogger(&buf), &fakeModels{err: tt.err}, "gemini-test")

			got, err := g.Generate(context.Background(), "prompt")
			assert.Nil(t, got)
			require.Error(t, err)

			var genErr *generation.GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, tt.wantKind, genErr.Kind)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.NotContains(t, err.Error(), tt.err.Error(), "provider detail must stay out of the message")
			assert.Contains(t, buf.String(), "gift generation request failed")
		})
	}
}

func TestClassifyProviderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want generation.ErrorKind
	}{
		{"429", genai.APIError{Code: 429}, generation.QuotaExceeded},
		{"resource exhausted status", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}, generation.QuotaExceeded},
		{"billing message", genai.APIError{Code: 403, Message: "Billing account disabled"}, generation.QuotaExceeded},
		{"pointer api error", &genai.APIError{Code: 429}, generation.QuotaExceeded},
		{"wrapped api error", fmt.Errorf("call: %w", genai.APIError{Code: 429}), generation.QuotaExceeded},
		{"insufficient_quota text", errors.New(`{"error":{"type":"insufficient_quota"}}`), generation.QuotaExceeded},
		{"server error", genai.APIError{Code: 500, Status: "INTERNAL"}, generation.ProviderFailure},
		{"bad request", genai.APIError{Code: 400, Status: "INVALID_ARGUMENT"}, generation.ProviderFailure},
		{"timeout", context.DeadlineExceeded, generation.ProviderFailure},
		{"nil", nil, generation.ProviderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyProviderError(tt.err))
		})
	}
}

func TestNewGeminiGeneratorValidatesConfig(t *testing.T) {
	t.Parallel()

	log := slog.Default()
	ctx := context.Background()

	_, err := NewGeminiGenerator(ctx, nil, config.LLMConfig{GeminiAPIKey: "k", ModelName: "m"})
	assert.Error(t, err)

	_, err = NewGeminiGenerator(ctx, log, config.LLMConfig{ModelName: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewGeminiGenerator(ctx, log, config.LLMConfig{GeminiAPIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	g, err := NewGeminiGenerator(ctx, log, config.LLMConfig{
		GeminiAPIKey: "test-key",
		ModelName:    "gemini-2.0-flash",
		BaseURL:      "http://127.0.0.1:1",
	})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", g.model)
}

func TestResponseText(t *testing.T) {
	t.Parallel()

	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: `{"gifts":`}, nil, {Text: `[]}`}}},
		}},
	}
	assert.Equal(t, `{"gifts":[]}`, responseText(resp))
}
