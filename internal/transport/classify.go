package transport

import (
	"encoding/json"
	"net/http"

	"github.com/eshaffer321/roboat-go/internal/types"
	"github.com/pkg/errors"
)

// errorResponse is the structured error body used on 400 and 403. Only the
// first entry is meaningful.
type errorResponse struct {
	Errors *[]errorEntry `json:"errors"`
}

type errorEntry struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Classify turns the outcome of Send into either nil, with the body decoded
// into result, or exactly one error from the taxonomy in internal/types.
// A nil result skips decoding; only the status is checked.
func Classify(resp *Response, sendErr error, result interface{}) error {
	if sendErr != nil {
		var transportErr *types.TransportError
		if errors.As(sendErr, &transportErr) {
			return transportErr
		}
		return &types.TransportError{Err: sendErr}
	}
	if resp == nil {
		return &types.TransportError{Err: errors.New("no response")}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if result == nil {
			return nil
		}
		return Decode(resp.Body, result)
	case http.StatusBadRequest:
		return classifyBadRequest(resp)
	case http.StatusUnauthorized:
		return types.ErrInvalidCredential
	case http.StatusForbidden:
		return classifyForbidden(resp)
	case http.StatusTooManyRequests:
		return types.ErrRateLimited
	case http.StatusInternalServerError:
		return types.ErrServerError
	default:
		return &types.UnrecognizedStatusError{StatusCode: resp.StatusCode}
	}
}

// Decode unmarshals a 200 body into result
func Decode(body []byte, result interface{}) error {
	if err := json.Unmarshal(body, result); err != nil {
		return errors.WithMessagef(types.ErrMalformedResponse, "decode %T: %v", result, err)
	}
	return nil
}

// parseErrorBody reports false when the body is not a structured error
func parseErrorBody(body []byte) ([]errorEntry, bool) {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Errors == nil {
		return nil, false
	}
	return *parsed.Errors, true
}

func classifyBadRequest(resp *Response) error {
	entries, ok := parseErrorBody(resp.Body)
	if !ok || len(entries) == 0 {
		return types.ErrBadRequest
	}
	return remoteError(resp.StatusCode, entries[0])
}

// classifyForbidden separates a stale anti-forgery token from a genuine
// rejection. Code 0 is the remote service's generic token mismatch marker.
func classifyForbidden(resp *Response) error {
	token := resp.Header.Get(types.CSRFHeader)
	entries, ok := parseErrorBody(resp.Body)

	if token != "" {
		if !ok || len(entries) == 0 || entries[0].Code == 0 {
			return &types.StaleTokenError{Token: token}
		}
		return remoteError(resp.StatusCode, entries[0])
	}

	switch {
	case !ok:
		return types.ErrTokenHeaderMissing
	case len(entries) == 0:
		return types.ErrMalformedResponse
	case entries[0].Code == 0:
		return types.ErrTokenHeaderMissing
	default:
		return remoteError(resp.StatusCode, entries[0])
	}
}

func remoteError(status int, entry errorEntry) *types.RemoteError {
	return &types.RemoteError{
		StatusCode: status,
		Code:       entry.Code,
		Message:    entry.Message,
	}
}
