package roboat

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/eshaffer321/roboat-go/internal/transport"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requestBuilder builds a fresh request carrying the given anti-forgery
// token. It is invoked once per attempt.
type requestBuilder func(token string) (*Request, error)

// call tracks one logical call across its attempts
type call struct {
	endpoint string
	id       string
	start    time.Time
	attempts int
	method   string
	url      string
	status   int
}

func newCall(endpoint string) *call {
	return &call{
		endpoint: endpoint,
		id:       uuid.NewString(),
		start:    time.Now(),
	}
}

// newRequest builds a request carrying the credential cookie. body is
// encoded as JSON when non-nil.
func (c *Client) newRequest(method, url string, body interface{}) (*Request, error) {
	cookie, err := c.session.cookie()
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method: method,
		URL:    url,
		Header: http.Header{},
	}
	req.Header.Set("Cookie", cookie)

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request")
		}
		req.Body = encoded
	}

	return req, nil
}

// mutatingRequest returns a builder that attaches the anti-forgery token
// to a newly built request on every attempt
func (c *Client) mutatingRequest(method, url string, body interface{}) requestBuilder {
	return func(token string) (*Request, error) {
		req, err := c.newRequest(method, url, body)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set(CSRFHeader, token)
		}
		return req, nil
	}
}

// executeReadonly sends a request once and classifies the response into result
func (c *Client) executeReadonly(ctx context.Context, endpoint string, req *Request, result interface{}) error {
	cl := newCall(endpoint)

	err := c.do(ctx, cl, req, result)
	if err != nil {
		c.captureError(ctx, cl, err)
	}
	return err
}

// executeWithRetry runs a state-mutating call. If the first attempt is
// rejected only because the anti-forgery token is stale, the replacement
// token is stored and the request is rebuilt and sent exactly once more.
// A second stale token is returned to the caller.
func (c *Client) executeWithRetry(ctx context.Context, endpoint string, build requestBuilder, result interface{}) error {
	cl := newCall(endpoint)

	err := c.attempt(ctx, cl, build, result)

	var stale *StaleTokenError
	if errors.As(err, &stale) {
		c.session.setCSRFToken(stale.Token)
		c.logInfo("Refreshed x-csrf-token", "endpoint", endpoint, "request_id", cl.id)

		err = c.attempt(ctx, cl, build, result)
		if errors.As(err, &stale) {
			c.logWarn("x-csrf-token rejected after refresh", "endpoint", endpoint, "request_id", cl.id)
		}
	}

	if err != nil {
		c.captureError(ctx, cl, err)
	}
	return err
}

// attempt reads the current token, builds the request and performs it
func (c *Client) attempt(ctx context.Context, cl *call, build requestBuilder, result interface{}) error {
	req, err := build(c.session.csrfToken())
	if err != nil {
		return err
	}
	return c.do(ctx, cl, req, result)
}

// do performs one network attempt and classifies it
func (c *Client) do(ctx context.Context, cl *call, req *Request, result interface{}) error {
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			return &TransportError{Err: errors.Wrap(err, "rate limiter")}
		}
	}

	cl.attempts++
	cl.method = req.Method
	cl.url = req.URL
	cl.status = 0

	c.logDebug("Sending request", "endpoint", cl.endpoint, "request_id", cl.id, "attempt", cl.attempts)

	resp, err := c.transport.Send(ctx, req)
	if resp != nil {
		cl.status = resp.StatusCode
	}

	return transport.Classify(resp, err, result)
}

// captureError reports a failed call to Sentry
func (c *Client) captureError(ctx context.Context, cl *call, err error) {
	var validationErr *ValidationError
	if errors.Is(err, ErrCredentialNotSet) || errors.As(err, &validationErr) {
		return
	}

	c.logError("Request failed", "endpoint", cl.endpoint, "request_id", cl.id, "attempts", cl.attempts, "error", err)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("roboat.endpoint", cl.endpoint)
		scope.SetTag("roboat.request_id", cl.id)
		scope.SetContext("request", map[string]interface{}{
			"method":   cl.method,
			"url":      cl.url,
			"status":   cl.status,
			"attempts": cl.attempts,
			"duration": time.Since(cl.start).String(),
		})
		hub.CaptureException(err)
	})
}

func (c *Client) logDebug(msg string, keysAndValues ...interface{}) {
	if c.options.Logger != nil {
		c.options.Logger.Debug(msg, keysAndValues...)
	}
}

func (c *Client) logInfo(msg string, keysAndValues ...interface{}) {
	if c.options.Logger != nil {
		c.options.Logger.Info(msg, keysAndValues...)
	}
}

func (c *Client) logWarn(msg string, keysAndValues ...interface{}) {
	if c.options.Logger != nil {
		c.options.Logger.Warn(msg, keysAndValues...)
	}
}

func (c *Client) logError(msg string, keysAndValues ...interface{}) {
	if c.options.Logger != nil {
		c.options.Logger.Error(msg, keysAndValues...)
	}
}
