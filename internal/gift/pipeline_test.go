package gift

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/presently/presently-api/internal/domain"
	"github.com/presently/presently-api/internal/generation"
	"github.com/presently/presently-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPipeline_SuggestForAlex(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{Candidates: []domain.GiftCandidate{
		{Name: "Chess Set", Description: "Walnut tournament board", Price: 899, Category: "Games"},
		{Name: "Espresso Machine", Description: "Dual boiler", Price: 1499, Category: "Kitchen"},
	}}
	images := &mocks.MockImageFinder{Images: map[string]string{
		"Chess Set": "https://images.example/chess-small.jpg",
	}}
	p := NewPipeline(gen, images, testAssembler(), quiet())

	got, err := p.Suggest(context.Background(), alex())
	require.NoError(t, err)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "chess, coffee")
	assert.Contains(t, prompts[0], "500")
	assert.Contains(t, prompts[0], "2000")

	require.Len(t, got, 2)
	assert.Equal(t, "gift-1", got[0].ID)
	assert.Equal(t, "https://images.example/chess-small.jpg", got[0].ImageURL)
	assert.Equal(t, "gift-2", got[1].ID)
	assert.Contains(t, got[1].ImageURL, url.QueryEscape("Espresso Machine"))
	assert.Equal(t, "Alex", got[1].RecipientName)
	assert.ElementsMatch(t, []string{"Chess Set", "Espresso Machine"}, images.Queries())
}

func TestPipeline_GeneratorErrorPassesThrough(t *testing.T) {
	t.Parallel()

	genErr := generation.NewGenerationError(generation.ProviderFailure, errors.New("dial tcp: timeout"))
	images := &mocks.MockImageFinder{}
	p := NewPipeline(&mocks.MockGenerator{Err: genErr}, images, testAssembler(), quiet())

	got, err := p.Suggest(context.Background(), alex())
	assert.Nil(t, got)
	assert.Same(t, genErr, err)
	assert.Empty(t, images.Queries(), "no image lookups after a failed generation")
}

func TestPipeline_NoCandidates(t *testing.T) {
	t.Parallel()

	images := &mocks.MockImageFinder{}
	p := NewPipeline(&mocks.MockGenerator{}, images, testAssembler(), quiet())

	got, err := p.Suggest(context.Background(), alex())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, images.Queries())
}

func TestPipeline_ImageLookupsRunConcurrently(t *testing.T) {
	t.Parallel()

	names := []string{"A", "B", "C", "D"}
	gen := &mocks.MockGenerator{Candidates: candidates(names...)}

	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	images := &mocks.MockImageFinder{FindImageFn: func(ctx context.Context, query string) string {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		<-release
		inFlight.Add(-1)
		if query == "B" {
			return "" // failed lookup
		}
		return "https://img/" + query
	}}
	p := NewPipeline(gen, images, testAssembler(), quiet())

	done := make(chan []domain.GiftSuggestion)
	go func() {
		got, err := p.Suggest(context.Background(), alex())
		assert.NoError(t, err)
		done <- got
	}()

	require.Eventually(t, func() bool { return inFlight.Load() == int32(len(names)) },
		2*time.Second, 5*time.Millisecond, "all lookups should be in flight at once")
	close(release)

	got := <-done
	require.Len(t, got, len(names))
	assert.Equal(t, int32(len(names)), peak.Load())
	assert.Equal(t, "https://img/A", got[0].ImageURL)
	assert.Equal(t, "https://placeholder.example/600x400?text=B", got[1].ImageURL)
	assert.Equal(t, "https://img/D", got[3].ImageURL)
}

func TestPipeline_SlowLookupDelaysButKeepsOrder(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{Candidates: candidates("Slow", "Fast")}
	images := &mocks.MockImageFinder{FindImageFn: func(ctx context.Context, query string) string {
		if query == "Slow" {
			time.Sleep(50 * time.Millisecond)
		}
		return "https://img/" + query
	}}
	p := NewPipeline(gen, images, testAssembler(), quiet())

	got, err := p.Suggest(context.Background(), alex())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://img/Slow", got[0].ImageURL)
	assert.Equal(t, "https://img/Fast", got[1].ImageURL)
}
