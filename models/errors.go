package models

import (
	"errors"
	"fmt"
)

// Error codes used in API responses and internal error handling.
const (
	ErrCodeElementNotFound  = "ELEMENT_NOT_FOUND"
	ErrCodeAttributeMissing = "ATTRIBUTE_MISSING"
	ErrCodeParse            = "PARSE_FAILED"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// Sentinel errors wrapped by ScrapeError so callers can use errors.Is.
var (
	ErrElementNotFound  = errors.New("element not found")
	ErrAttributeMissing = errors.New("attribute missing")
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ScrapeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ScrapeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError creates a new ScrapeError.
func NewScrapeError(code, message string, err error) *ScrapeError {
	return &ScrapeError{Code: code, Message: message, Err: err}
}

// ElementNotFound reports a selector that matched no node.
func ElementNotFound(selector string) *ScrapeError {
	return NewScrapeError(ErrCodeElementNotFound, fmt.Sprintf("selector %q matched no elements", selector), ErrElementNotFound)
}

// AttributeMissing reports a matched node lacking a required attribute.
func AttributeMissing(selector, attr string) *ScrapeError {
	return NewScrapeError(ErrCodeAttributeMissing, fmt.Sprintf("element %q has no %q attribute", selector, attr), ErrAttributeMissing)
}

// ToDetail converts an internal error to an API-facing ErrorDetail.
func (e *ScrapeError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: e.Code, Message: e.Message}
}

// AsScrapeError unwraps err into a ScrapeError, wrapping unknown errors
// as ErrCodeInternal.
func AsScrapeError(err error) *ScrapeError {
	var se *ScrapeError
	if errors.As(err, &se) {
		return se
	}
	return NewScrapeError(ErrCodeInternal, err.Error(), err)
}
