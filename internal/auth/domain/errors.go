package domain

import (
	"fmt"

	"github.com/infiniteloop/camaraclient/internal/errors"
)

// Token exchange errors.
//
// Everything except ErrInvalidSettings wraps errors.ErrUnavailable, so a
// business caller can treat any failed exchange as "service unavailable".
var (
	// ErrInvalidSettings indicates a required setting is missing or malformed.
	// No request is sent when it is returned.
	ErrInvalidSettings = errors.Wrap(errors.ErrInvalidInput, "invalid operator settings")

	// ErrTransport indicates the token endpoint could not be reached: DNS, TLS
	// handshake, timeout or connection reset.
	ErrTransport = errors.Wrap(errors.ErrUnavailable, "token endpoint unreachable")

	// ErrUnexpectedStatus indicates the endpoint answered outside 2xx.
	ErrUnexpectedStatus = errors.Wrap(errors.ErrUnavailable, "token endpoint returned unexpected status")

	// ErrInvalidTokenResponse indicates the response body is not valid JSON.
	ErrInvalidTokenResponse = errors.Wrap(errors.ErrUnavailable, "token response is not valid JSON")

	// ErrMissingAccessToken indicates valid JSON without a non-empty access_token string.
	ErrMissingAccessToken = errors.Wrap(errors.ErrUnavailable, "token response missing access_token")
)

// ConfigError names the setting that failed validation.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid setting %s: %s", e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidSettings
}

// HTTPStatusError carries the status code and the (truncated) body of a
// non-2xx token response.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("token endpoint returned status %d", e.StatusCode)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
