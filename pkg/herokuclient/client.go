package herokuclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/hapi/internal/auth"
	"github.com/fivetwenty-io/hapi/internal/client"
	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
)

// ErrNoCredentials is returned by NewFromEnvironment when HEROKU_API_KEY is
// unset.
var ErrNoCredentials = auth.ErrNoCredentials

// New creates a new Platform API client. config is not modified.
func New(ctx context.Context, config *heroku.Config) (heroku.Client, error) {
	if config == nil {
		return nil, heroku.ErrConfigRequired
	}

	resolved := *config
	resolved.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	creds, err := auth.Resolve(config.Token, config.Credentials)

	switch {
	case err == nil:
		resolved.Credentials = creds
	case errors.Is(err, auth.ErrNoCredentials):
		// Unauthenticated client.
	default:
		return nil, fmt.Errorf("resolving credentials: %w", err)
	}

	c, err := client.New(ctx, &resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a client for the default endpoint authenticated with
// token.
func NewWithToken(ctx context.Context, token string) (heroku.Client, error) {
	return New(ctx, &heroku.Config{Token: token})
}

// NewWithEndpoint creates a client for endpoint authenticated with token.
func NewWithEndpoint(ctx context.Context, endpoint, token string) (heroku.Client, error) {
	return New(ctx, &heroku.Config{
		APIEndpoint: endpoint,
		Token:       token,
	})
}

// NewFromEnvironment creates a client authenticated with HEROKU_API_KEY.
func NewFromEnvironment(ctx context.Context) (heroku.Client, error) {
	creds, err := auth.Resolve("", nil)
	if err != nil {
		return nil, err
	}

	return New(ctx, &heroku.Config{Credentials: creds})
}
