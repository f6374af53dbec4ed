package client

import (
	"errors"
	"testing"
)

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name       string
		errorClass ErrorClass
		expected   bool
	}{
		{
			name:       "client error should not retry",
			errorClass: ErrorClassClient,
			expected:   false,
		},
		{
			name:       "server error should retry",
			errorClass: ErrorClassServer,
			expected:   true,
		},
		{
			name:       "rate limit should retry",
			errorClass: ErrorClassRateLimit,
			expected:   true,
		},
		{
			name:       "network error should retry",
			errorClass: ErrorClassNetwork,
			expected:   true,
		},
		{
			name:       "empty error class should not retry",
			errorClass: "",
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shouldRetry(tt.errorClass)
			if result != tt.expected {
				t.Errorf("shouldRetry(%q) = %v, want %v", tt.errorClass, result, tt.expected)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		expected string
	}{
		{
			name: "error with wrapped error",
			apiError: &APIError{
				StatusCode: 500,
				ErrorClass: ErrorClassServer,
				Message:    "internal error encountered",
				Err:        errors.New("connection refused"),
			},
			expected: "genai server error (status 500): internal error encountered: connection refused",
		},
		{
			name: "error without wrapped error",
			apiError: &APIError{
				StatusCode: 404,
				ErrorClass: ErrorClassClient,
				Message:    "not found",
				Err:        nil,
			},
			expected: "genai client error (status 404): not found",
		},
		{
			name: "rate limit error",
			apiError: &APIError{
				StatusCode: 429,
				ErrorClass: ErrorClassRateLimit,
				Message:    "resource has been exhausted",
				Err:        nil,
			},
			expected: "genai rate_limit error (status 429): resource has been exhausted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.apiError.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	apiError := &APIError{
		StatusCode: 500,
		ErrorClass: ErrorClassServer,
		Message:    "server error",
		Err:        wrappedErr,
	}

	if unwrapped := apiError.Unwrap(); unwrapped != wrappedErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, wrappedErr)
	}

	if !errors.Is(apiError, wrappedErr) {
		t.Error("errors.Is should work with wrapped error")
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected ErrorClass
	}{
		{name: "too many requests", status: 429, expected: ErrorClassRateLimit},
		{name: "bad request", status: 400, expected: ErrorClassClient},
		{name: "not found", status: 404, expected: ErrorClassClient},
		{name: "internal error", status: 500, expected: ErrorClassServer},
		{name: "bad gateway", status: 502, expected: ErrorClassServer},
		{name: "ok", status: 200, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStatus(tt.status); got != tt.expected {
				t.Errorf("classifyStatus(%d) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}
