// Package auth attaches credentials to outgoing requests and resolves which
// credentials a client should use.
package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no credentials configured: set a token or " + constants.EnvAPIKey)
)

// Attach sets every header produced by creds on h. A nil creds attaches
// nothing.
func Attach(h http.Header, creds heroku.Credentials) {
	if creds == nil {
		return
	}

	for _, header := range creds.Headers() {
		h.Set(header.Name, header.Value)
	}
}

// Resolve picks the credentials for a client: explicit creds first, then a
// configured token, then the HEROKU_API_KEY environment variable.
func Resolve(token string, creds heroku.Credentials) (heroku.Credentials, error) {
	if creds != nil {
		return creds, nil
	}

	token = strings.TrimSpace(token)
	if token != "" {
		return heroku.NewUserAuthToken(token), nil
	}

	envToken := strings.TrimSpace(os.Getenv(constants.EnvAPIKey))
	if envToken != "" {
		return heroku.NewUserAuthToken(envToken), nil
	}

	return nil, ErrNoCredentials
}

// Redact returns h with credential headers masked, for logging.
func Redact(h http.Header) http.Header {
	redacted := h.Clone()
	if redacted.Get(constants.AuthorizationHeader) != "" {
		redacted.Set(constants.AuthorizationHeader, constants.MaskedSecret)
	}

	return redacted
}
