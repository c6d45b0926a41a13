package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Store and generation errors are wrapped with %w and passed through
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrEmptyRecipientName is returned when a suggestion request names no recipient.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyRecipientName = errors.New("recipient name cannot be empty")
)
