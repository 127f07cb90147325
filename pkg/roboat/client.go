package roboat

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/eshaffer321/roboat-go/internal/transport"
	internalTypes "github.com/eshaffer321/roboat-go/internal/types"
	"github.com/getsentry/sentry-go"
	"golang.org/x/time/rate"
)

const (
	// DefaultEconomyURL is the default economy API base URL
	DefaultEconomyURL = internalTypes.DefaultEconomyURL

	// DefaultUsersURL is the default users API base URL
	DefaultUsersURL = internalTypes.DefaultUsersURL

	// DefaultCatalogURL is the default catalog API base URL
	DefaultCatalogURL = internalTypes.DefaultCatalogURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// UserAgent is the user agent string
	UserAgent = internalTypes.UserAgent

	// CSRFHeader is the anti-forgery token header
	CSRFHeader = internalTypes.CSRFHeader
)

// Client is the main API client. A Client is safe for concurrent use.
type Client struct {
	// Service interfaces
	Economy EconomyService
	Users   UserService
	Catalog CatalogService

	// Internal fields
	economyURL string
	usersURL   string
	catalogURL string
	transport  Transport
	options    *ClientOptions
	session    *session
}

// ClientOptions configures the client
type ClientOptions struct {
	// Credential is the .ROBLOSECURITY cookie value. Empty means
	// unauthenticated; it cannot be changed after construction.
	Credential string

	// EconomyURL overrides the economy API base URL
	EconomyURL string

	// UsersURL overrides the users API base URL
	UsersURL string

	// CatalogURL overrides the catalog API base URL
	CatalogURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// UserAgent overrides the default user agent
	UserAgent string

	// Headers are added to every request
	Headers map[string]string

	// Transport replaces the HTTP transport entirely
	Transport Transport

	// Logger for debug logging
	Logger Logger

	// RetryConfig enables retries of connection failures in the transport.
	// Non-idempotent calls such as purchases are retried too, so leave this
	// nil unless the caller can tolerate duplicates.
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// RetryConfig configures transport-level retries
type RetryConfig = internalTypes.RetryConfig

// Hooks provides lifecycle hooks for requests
type Hooks = internalTypes.Hooks

// Request is a transport-level request
type Request = transport.Request

// Response is a fully read transport-level response
type Response = transport.Response

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport performs a single HTTP exchange. Implementations report a
// failure to obtain a response as an error and must not interpret the
// status code.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// NewClient creates a new client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.EconomyURL == "" {
		opts.EconomyURL = DefaultEconomyURL
	}
	if opts.UsersURL == "" {
		opts.UsersURL = DefaultUsersURL
	}
	if opts.CatalogURL == "" {
		opts.CatalogURL = DefaultCatalogURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	trans := opts.Transport
	if trans == nil {
		trans = transport.NewHTTPTransport(&transport.Options{
			HTTPClient:  opts.HTTPClient,
			UserAgent:   opts.UserAgent,
			Headers:     opts.Headers,
			RetryConfig: opts.RetryConfig,
			Logger:      opts.Logger,
			Hooks:       opts.Hooks,
		})
	}

	c := &Client{
		economyURL: strings.TrimRight(opts.EconomyURL, "/"),
		usersURL:   strings.TrimRight(opts.UsersURL, "/"),
		catalogURL: strings.TrimRight(opts.CatalogURL, "/"),
		transport:  trans,
		options:    opts,
		session:    newSession(opts.Credential),
	}

	c.initServices()

	return c, nil
}

// NewClientWithCredential creates a client authenticated with a .ROBLOSECURITY cookie
func NewClientWithCredential(credential string) (*Client, error) {
	return NewClient(&ClientOptions{
		Credential: credential,
	})
}

// NewRateLimiter returns a token bucket limiter allowing perSecond requests
// with the given burst
func NewRateLimiter(perSecond float64, burst int) RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Economy = &economyService{client: c}
	c.Users = &userService{client: c}
	c.Catalog = &catalogService{client: c}
}

// UserID returns the numeric id of the authenticated account
func (c *Client) UserID(ctx context.Context) (uint64, error) {
	identity, err := c.resolveSelfIdentity(ctx)
	if err != nil {
		return 0, err
	}
	return identity.UserID, nil
}

// Username returns the username of the authenticated account
func (c *Client) Username(ctx context.Context) (string, error) {
	identity, err := c.resolveSelfIdentity(ctx)
	if err != nil {
		return "", err
	}
	return identity.Username, nil
}

// DisplayName returns the display name of the authenticated account
func (c *Client) DisplayName(ctx context.Context) (string, error) {
	identity, err := c.resolveSelfIdentity(ctx)
	if err != nil {
		return "", err
	}
	return identity.DisplayName, nil
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
