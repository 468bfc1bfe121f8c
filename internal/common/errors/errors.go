// Package errors provides standardized error handling for the analysis pipeline.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInsufficientData     ErrorCode = "INSUFFICIENT_DATA"
	ErrCodeVectorLengthMismatch ErrorCode = "VECTOR_LENGTH_MISMATCH"
	ErrCodeInvalidWatchHistory  ErrorCode = "INVALID_WATCH_HISTORY"
	ErrCodeRecommendationFailed ErrorCode = "RECOMMENDATION_FAILED"
	ErrCodeCacheUnavailable     ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// IsCode reports whether err is a *StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// NewInsufficientDataError signals a batch too small to derive features from.
func NewInsufficientDataError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInsufficientData,
		Message:   "Not enough watch history to build a feature profile",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewVectorLengthMismatchError signals a similarity call over unequal-length vectors.
func NewVectorLengthMismatchError(lenA, lenB int) *StandardError {
	return &StandardError{
		Code:      ErrCodeVectorLengthMismatch,
		Message:   "Feature vectors must have the same length",
		Details:   fmt.Sprintf("len(a)=%d, len(b)=%d", lenA, lenB),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidWatchHistoryError signals a malformed watch-history export.
func NewInvalidWatchHistoryError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidWatchHistory,
		Message:   "Watch history export failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecommendationFailedError wraps an unexpected failure inside the scoring engine.
func NewRecommendationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecommendationFailed,
		Message:   "Career recommendation scoring failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError wraps a cache read/write failure. Retryable because
// the cache is an optimization, never a correctness dependency.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Result cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
