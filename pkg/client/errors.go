package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled during retry.
	ErrContextCancelled = errors.New("context cancelled")

	// ErrQuotaExceeded is returned when the quota tracker blocks a request
	// before it is sent.
	ErrQuotaExceeded = errors.New("request blocked: quota exhausted")
)

// APIError represents a GenAI API error with additional context.
type APIError struct {
	StatusCode int
	ErrorClass ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("genai %s error (status %d): %s: %v",
			e.ErrorClass, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("genai %s error (status %d): %s",
		e.ErrorClass, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// shouldRetry determines if an error should be retried based on its classification.
func shouldRetry(errorClass ErrorClass) bool {
	switch errorClass {
	case ErrorClassClient:
		// 4xx errors are the caller's fault and never resolve on their own
		return false
	case ErrorClassServer:
		return true
	case ErrorClassRateLimit:
		return true
	case ErrorClassNetwork:
		return true
	default:
		return false
	}
}
