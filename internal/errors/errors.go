// Package errors provides custom error types for the textagent client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNoAPIKey        = errors.New("no API key configured")
	ErrUnknownModel    = errors.New("unknown model preset")
	ErrSystemAfterTurn = errors.New("system message must precede all turns")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoContent       = errors.New("no content in response")
)

// ConfigError represents an invalid or incomplete agent configuration.
// It is fatal to construction and not recoverable by the agent.
type ConfigError struct {
	Message string
	// Err holds the sentinel describing the specific condition
	// (ErrNoAPIKey, ErrUnknownModel), or nil.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Message == "" {
		return "invalid configuration"
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is allows comparison with other ConfigErrors; sentinel matching goes
// through Unwrap so only the tagged condition matches.
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

// NewConfigError creates a ConfigError with no sentinel cause
func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

// NewConfigErrorWithCause creates a ConfigError tagged with the sentinel
// for the condition that produced it
func NewConfigErrorWithCause(message string, cause error) *ConfigError {
	return &ConfigError{Message: message, Err: cause}
}

// StateError represents a conversation invariant violation, such as adding
// a system message after turns already exist. The caller can correct it;
// existing history is never touched.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	if e.Message == "" {
		return "invalid conversation state"
	}
	return fmt.Sprintf("invalid conversation state: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *StateError) Is(target error) bool {
	if target == ErrSystemAfterTurn {
		return true
	}
	_, ok := target.(*StateError)
	return ok
}

// NewStateError creates a new StateError
func NewStateError(message string) *StateError {
	return &StateError{Message: message}
}

// RequestError represents a non-2xx response from the remote API.
type RequestError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Body       string
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewRequestError creates a new RequestError
func NewRequestError(statusCode int, endpoint, message string) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NewRequestErrorWithBody creates a RequestError carrying the response body
func NewRequestErrorWithBody(statusCode int, endpoint, message, body string) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		Body:       body,
	}
}

// NetworkError represents a transport-level failure before any HTTP status
// was received.
type NetworkError struct {
	Operation string
	Endpoint  string
	Err       error
}

func (e *NetworkError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("network error during %s at %s: %v", e.Operation, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(operation, endpoint string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Endpoint: endpoint, Err: err}
}

// TimeoutError represents an expired request deadline. It is kept distinct
// from NetworkError so callers can tell a stalled call from a refused one.
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	if e.Message == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out: %s", e.Message)
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(message string) *TimeoutError {
	return &TimeoutError{Message: message}
}

// ParseError represents a malformed response body.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}
