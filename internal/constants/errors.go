package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no API token configured, run 'hapi login' or set HEROKU_API_KEY")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrEmptyToken        = errors.New("token must not be empty")
)

// Argument errors.
var (
	ErrAppRequired   = errors.New("app name or id is required (use --app)")
	ErrSpaceRequired = errors.New("space name or id is required (use --space)")
)
