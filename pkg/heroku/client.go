package heroku

import (
	"context"
	"time"
)

// InfoClient provides access to the calling account's own information.
type InfoClient interface {
	GetAccount(ctx context.Context) (*Account, error)
	GetRateLimits(ctx context.Context) (*RateLimit, error)
}

// Client is a configured Platform API client. Any Endpoint can be executed
// against it with Execute or ExecuteRaw.
type Client interface {
	Sender
	InfoClient

	// Credentials returns the credentials attached to every request, or nil.
	Credentials() Credentials
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a heroku.Client.
//
// # Authentication
//
// Credentials takes precedence. Otherwise Token is wrapped in a
// UserAuthToken. When both are empty, herokuclient.New falls back to the
// HEROKU_API_KEY environment variable; if that is unset as well, requests are
// sent without authentication.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to
// Execute. Every call issues exactly one request unless RetryMax is set, in
// which case connection errors, 429 and 5xx responses are retried with
// exponential backoff between RetryWaitMin and RetryWaitMax.
type Config struct {
	// APIEndpoint: base URL for the Platform API. Defaults to
	// "https://api.heroku.com".
	APIEndpoint string

	// Token: a Platform API token sent as a Bearer token.
	Token string
	// Credentials: explicit credentials, overriding Token.
	Credentials Credentials

	// HTTPTimeout: timeout of the underlying http.Client. Zero uses the
	// default of 30s.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. Zero
	// disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// AcceptVersion: Platform API version requested in the Accept header.
	// Defaults to "3".
	AcceptVersion string
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain
}
