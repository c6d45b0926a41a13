// Package gemini implements generation.Generator on top of Google's Gemini API.
//
// Requests ask for a JSON reply constrained by a response schema. Replies are
// still decoded defensively: a reply that is not JSON, or lacks the gifts
// array, yields no candidates, and individual gifts missing a required field
// are dropped. Provider errors are classified into the two generation error
// kinds by ClassifyProviderError.
package gemini
