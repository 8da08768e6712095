package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/internal/http"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
)

// Client implements the heroku.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials heroku.Credentials
	baseURL     string
	logger      heroku.Logger
}

// createCredentials picks explicit credentials over a token. It returns nil
// when neither is configured.
func createCredentials(config *heroku.Config) heroku.Credentials {
	if config.Credentials != nil {
		return config.Credentials
	}

	token := strings.TrimSpace(config.Token)
	if token != "" {
		return heroku.NewUserAuthToken(token)
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *heroku.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.AcceptVersion != "" {
		httpOpts = append(httpOpts, http.WithAcceptVersion(config.AcceptVersion))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Platform API client.
func New(ctx context.Context, config *heroku.Config) (*Client, error) {
	if config == nil {
		return nil, heroku.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, heroku.ErrAPIEndpointRequired
	}

	credentials := createCredentials(config)
	httpClient := http.NewClient(config.APIEndpoint, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: credentials,
		baseURL:     httpClient.BaseURL(),
		logger:      config.Logger,
	}

	if client.logger != nil {
		client.logger.Debug("Client created", map[string]interface{}{
			"api_endpoint":  client.baseURL,
			"authenticated": credentials != nil,
			"retry_max":     config.RetryMax,
		})
	}

	return client, nil
}

// Send implements heroku.Sender.
func (c *Client) Send(ctx context.Context, req *heroku.Request) (*heroku.Response, error) {
	return c.httpClient.Send(ctx, req)
}

// Credentials implements heroku.Client.Credentials.
func (c *Client) Credentials() heroku.Credentials {
	return c.credentials
}

// BaseURL returns the API endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// GetAccount implements heroku.InfoClient.GetAccount.
func (c *Client) GetAccount(ctx context.Context) (*heroku.Account, error) {
	account, err := heroku.Execute[heroku.Account](ctx, c, heroku.NewAccountDetails())
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

// GetRateLimits implements heroku.InfoClient.GetRateLimits.
func (c *Client) GetRateLimits(ctx context.Context) (*heroku.RateLimit, error) {
	rateLimit, err := heroku.Execute[heroku.RateLimit](ctx, c, heroku.NewRateLimitDetails())
	if err != nil {
		return nil, fmt.Errorf("getting rate limits: %w", err)
	}

	return rateLimit, nil
}

var _ heroku.Client = (*Client)(nil)
