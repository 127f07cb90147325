package types

import "time"

const (
	// DefaultEconomyURL is the base URL of the economy API
	DefaultEconomyURL = "https://economy.roblox.com"

	// DefaultUsersURL is the base URL of the users API
	DefaultUsersURL = "https://users.roblox.com"

	// DefaultCatalogURL is the base URL of the catalog API
	DefaultCatalogURL = "https://catalog.roblox.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "roboat-go/1.0.0"

	// CSRFHeader carries the anti-forgery token on requests and its
	// replacement on 403 responses. Header lookups are case-insensitive.
	CSRFHeader = "X-CSRF-TOKEN"

	// CredentialCookie is the name of the session cookie
	CredentialCookie = ".ROBLOSECURITY"

	// ContentType is the content type of every request body
	ContentType = "application/json"
)
