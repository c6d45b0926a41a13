package gift

import (
	"net/url"
	"strconv"

	"github.com/presently/presently-api/internal/config"
	"github.com/presently/presently-api/internal/domain"
)

// IDPrefix prefixes the 1-based batch position in suggestion ids.
const IDPrefix = "gift-"

// Assembler merges candidates with their images into suggestions.
type Assembler struct {
	placeholderBaseURL string
	marketplaceBaseURL string
}

// NewAssembler creates an Assembler that derives placeholder images and
// marketplace links from the configured base URLs.
func NewAssembler(cfg config.LinksConfig) *Assembler {
	return &Assembler{
		placeholderBaseURL: cfg.PlaceholderBaseURL,
		marketplaceBaseURL: cfg.MarketplaceBaseURL,
	}
}

// Assemble builds one suggestion per candidate, in input order.
// images must be positionally aligned with candidates; an empty entry, or a
// missing one, is replaced by a placeholder image embedding the gift name.
func (a *Assembler) Assemble(
	candidates []domain.GiftCandidate,
	images []string,
	recipientName string,
) []domain.GiftSuggestion {
	suggestions := make([]domain.GiftSuggestion, len(candidates))
	for i, c := range candidates {
		var image string
		if i < len(images) {
			image = images[i]
		}
		if image == "" {
			image = a.PlaceholderURL(c.Name)
		}
		suggestions[i] = domain.GiftSuggestion{
			ID:            IDPrefix + strconv.Itoa(i+1),
			RecipientName: recipientName,
			GiftCandidate: c,
			ImageURL:      image,
			Link:          a.LinkURL(c.Name),
		}
	}
	return suggestions
}

// PlaceholderURL returns the fallback image URL for a gift name.
func (a *Assembler) PlaceholderURL(name string) string {
	return withQuery(a.placeholderBaseURL, "text", name)
}

// LinkURL returns the marketplace search URL for a gift name.
func (a *Assembler) LinkURL(name string) string {
	return withQuery(a.marketplaceBaseURL, "k", name)
}

func withQuery(base, key, value string) string {
	return base + "?" + key + "=" + url.QueryEscape(value)
}
