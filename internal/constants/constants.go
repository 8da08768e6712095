package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Platform API wire constants.
const (
	// DefaultAPIEndpoint is the base URL of the Heroku Platform API.
	DefaultAPIEndpoint = "https://api.heroku.com"

	// DefaultAcceptVersion is the API version requested through the Accept header.
	DefaultAcceptVersion = "3"

	// AcceptHeaderPrefix is the vendor media type, completed with "; version=N".
	AcceptHeaderPrefix = "application/vnd.heroku+json"

	// ContentTypeJSON is the content type of every request body.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "hapi-go/1.0"

	// AuthorizationHeader carries bearer credentials.
	AuthorizationHeader = "Authorization"

	// RateLimitRemainingHeader reports the remaining request budget.
	RateLimitRemainingHeader = "RateLimit-Remaining"

	// RequestIDHeader identifies a request in Heroku's logs.
	RequestIDHeader = "Request-Id"
)

// Environment variables.
const (
	// EnvAPIKey holds a Platform API token, as used by the Heroku CLI.
	EnvAPIKey = "HEROKU_API_KEY"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are only enabled when RetryMax > 0.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// HTTP status boundaries.
const (
	// HTTPStatusSuccessMin is the first success status.
	HTTPStatusSuccessMin = 200

	// HTTPStatusSuccessMax is the last success status.
	HTTPStatusSuccessMax = 299
)

// Error ids returned in the Platform API error envelope.
const (
	ErrorIDNotFound     = "not_found"
	ErrorIDUnauthorized = "unauthorized"
	ErrorIDForbidden    = "forbidden"
	ErrorIDRateLimit    = "rate_limit"
)

// Format constants.
const (
	// FormatJSON is the JSON output format.
	FormatJSON = "json"

	// FormatYAML is the YAML output format.
	FormatYAML = "yaml"

	// FormatTable is the table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in output.
	MaskedSecret = "***"

	// TokenPreviewLength is the number of token characters shown before masking.
	TokenPreviewLength = 4
)
