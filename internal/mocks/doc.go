// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes a function field per interface method (CreateFn, GenerateFn, ...).
// When a function field is nil the mock falls back to simple default behaviour,
// usually returning the configured default values.
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, prompt string) ([]domain.GiftCandidate, error) {
//	        return nil, generation.NewGenerationError(generation.QuotaExceeded, errors.New("429"))
//	    },
//	}
package mocks
