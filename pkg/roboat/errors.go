package roboat

import (
	"github.com/eshaffer321/roboat-go/internal/types"
	"github.com/pkg/errors"
)

var (
	// ErrCredentialNotSet is returned before any network call when the client has no credential
	ErrCredentialNotSet = types.ErrCredentialNotSet

	// ErrInvalidCredential is returned when the credential is missing, expired or rejected (401)
	ErrInvalidCredential = types.ErrInvalidCredential

	// ErrBadRequest is returned for a 400 without structured detail
	ErrBadRequest = types.ErrBadRequest

	// ErrRateLimited is returned when rate limited (429)
	ErrRateLimited = types.ErrRateLimited

	// ErrServerError is returned for a 500
	ErrServerError = types.ErrServerError

	// ErrMalformedResponse is returned when a response body cannot be interpreted
	ErrMalformedResponse = types.ErrMalformedResponse

	// ErrTokenHeaderMissing is returned when a token rejection came without a replacement token
	ErrTokenHeaderMissing = types.ErrTokenHeaderMissing

	// ErrTransport matches every transport failure
	ErrTransport = types.ErrTransport
)

// RemoteError is a structured error reported by the remote service
type RemoteError = types.RemoteError

// StaleTokenError is returned when the anti-forgery token was rejected
// twice in a row within one call
type StaleTokenError = types.StaleTokenError

// UnrecognizedStatusError is returned for unexpected status codes
type UnrecognizedStatusError = types.UnrecognizedStatusError

// TransportError wraps a failure to complete the HTTP exchange
type TransportError = types.TransportError

// ValidationError represents a locally rejected argument
type ValidationError = types.ValidationError

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrCredentialNotSet) ||
		errors.Is(err, ErrInvalidCredential) ||
		errors.Is(err, ErrTokenHeaderMissing) ||
		IsStaleToken(err)
}

// IsStaleToken reports whether the anti-forgery token was rejected
func IsStaleToken(err error) bool {
	var stale *StaleTokenError
	return errors.As(err, &stale)
}

// IsRetryable reports whether the same call may succeed if the caller
// repeats it later. This package never repeats calls on its own beyond the
// single token refresh.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrServerError) ||
		errors.Is(err, ErrTransport) ||
		IsStaleToken(err)
}
