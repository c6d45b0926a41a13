package gemini

import (
	"errors"
	"net/http"
	"strings"

	"github.com/presently/presently-api/internal/generation"
	"google.golang.org/genai"
)

// quotaStatus is the gRPC-style status Gemini reports when quota is exhausted.
const quotaStatus = "RESOURCE_EXHAUSTED"

// ClassifyProviderError maps an error returned by the Gemini client to a
// generation.ErrorKind. Quota and billing exhaustion map to QuotaExceeded;
// everything else, including network failures, maps to ProviderFailure.
func ClassifyProviderError(err error) generation.ErrorKind {
	if err == nil {
		return generation.ProviderFailure
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || strings.EqualFold(apiErr.Status, quotaStatus) {
			return generation.QuotaExceeded
		}
		if containsQuotaHint(apiErr.Message) {
			return generation.QuotaExceeded
		}
		return generation.ProviderFailure
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return ClassifyProviderError(*apiErrPtr)
	}

	if containsQuotaHint(err.Error()) {
		return generation.QuotaExceeded
	}
	return generation.ProviderFailure
}

func containsQuotaHint(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "insufficient_quota") ||
		strings.Contains(msg, "quota exceeded") ||
		strings.Contains(msg, "exceeded your current quota") ||
		strings.Contains(msg, "billing")
}
