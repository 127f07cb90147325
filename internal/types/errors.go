package types

import (
	"errors"
	"fmt"
)

// Error kinds that carry no payload
var (
	// ErrCredentialNotSet is returned before any network call when the client has no credential
	ErrCredentialNotSet = errors.New("credential not set")

	// ErrInvalidCredential is returned on 401; the credential is missing, expired or rejected
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrBadRequest is returned on 400 without a structured error body
	ErrBadRequest = errors.New("bad request")

	// ErrRateLimited is returned on 429
	ErrRateLimited = errors.New("too many requests")

	// ErrServerError is returned on 500
	ErrServerError = errors.New("internal server error")

	// ErrMalformedResponse is returned when a body does not match the expected shape
	ErrMalformedResponse = errors.New("malformed response")

	// ErrTokenHeaderMissing is returned on a token-related 403 that carried no replacement token
	ErrTokenHeaderMissing = errors.New("x-csrf-token not returned")

	// ErrTransport matches every *TransportError
	ErrTransport = errors.New("transport error")
)

// RemoteError is a structured error reported by the remote service in the
// body of a 400 or 403 response.
type RemoteError struct {
	StatusCode int    `json:"statusCode"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d (status %d): %s", e.Code, e.StatusCode, e.Message)
}

// StaleTokenError reports a 403 caused by an outdated anti-forgery token.
// Token is the replacement issued by the remote service.
type StaleTokenError struct {
	Token string
}

func (e *StaleTokenError) Error() string {
	return "x-csrf-token is stale"
}

// UnrecognizedStatusError is returned for status codes with no defined meaning
type UnrecognizedStatusError struct {
	StatusCode int
}

func (e *UnrecognizedStatusError) Error() string {
	return fmt.Sprintf("unrecognized status code: %d", e.StatusCode)
}

// TransportError wraps a failure to complete the HTTP exchange
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ValidationError is returned when an argument is rejected locally
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
