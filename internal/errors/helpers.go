package errors

import (
	"errors"
	"net/http"
)

// IsConfigError reports whether err is a configuration failure.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsStateError reports whether err is a conversation invariant violation.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// IsTimeoutError reports whether err is a request deadline expiry.
func IsTimeoutError(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsRemoteError reports whether err is any failure of the outbound call:
// transport failure, timeout, non-2xx status, or a malformed response body.
// These share one retry contract: history was left consistent, the caller
// may resend the same turn.
func IsRemoteError(err error) bool {
	var (
		re *RequestError
		ne *NetworkError
		te *TimeoutError
		pe *ParseError
	)
	return errors.As(err, &re) || errors.As(err, &ne) ||
		errors.As(err, &te) || errors.As(err, &pe)
}

// IsAuthError reports whether err is an authentication rejection (401/403).
func IsAuthError(err error) bool {
	status := GetHTTPStatus(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// IsRateLimitError reports whether err is a rate limit rejection (429).
func IsRateLimitError(err error) bool {
	return GetHTTPStatus(err) == http.StatusTooManyRequests
}

// GetHTTPStatus extracts the HTTP status code from err, or 0 when err does
// not carry one.
func GetHTTPStatus(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// GetResponseBody extracts the remote response body from err, or "" when
// err does not carry one.
func GetResponseBody(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Body
	}
	return ""
}

// GetEndpoint extracts the endpoint the failed request targeted, or "".
func GetEndpoint(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Endpoint
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Endpoint
	}
	return ""
}
