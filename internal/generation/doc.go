// Package generation defines the boundary between the gift pipeline and the
// external AI services it depends on: an LLM that proposes gift candidates and
// an image search that illustrates them. Implementations live under
// internal/platform (gemini, unsplash); this package only holds the Generator
// and ImageFinder interfaces and the GenerationError taxonomy they report.
package generation
