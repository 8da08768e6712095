// Package http is the Platform API transport: URL joining, Heroku headers,
// JSON bodies, debug logging, interceptors and opt-in retries on top of
// go-retryablehttp.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/hapi/internal/auth"
	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/hashicorp/go-retryablehttp"
)

// Request is a call issued through Do.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// Response is the raw result of a call.
type Response = heroku.Response

// Client sends requests to the Platform API.
type Client struct {
	baseURL       string
	httpClient    *retryablehttp.Client
	credentials   heroku.Credentials
	logger        heroku.Logger
	debug         bool
	userAgent     string
	acceptVersion string
	interceptors  *heroku.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and retry messages.
func WithLogger(logger heroku.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithAcceptVersion sets the API version requested in the Accept header.
func WithAcceptVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.acceptVersion = version
		}
	}
}

// WithRetryConfig enables retries of connection errors, 429 and 5xx
// responses. retryMax of zero disables them.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout sets the timeout of the underlying http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *heroku.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client. creds may be nil for unauthenticated
// calls.
func NewClient(baseURL string, creds heroku.Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    retryClient,
		credentials:   creds,
		userAgent:     constants.DefaultUserAgent,
		acceptVersion: constants.DefaultAcceptVersion,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

// BaseURL returns the API base the client sends to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials returns the credentials attached to every request.
func (c *Client) Credentials() heroku.Credentials {
	return c.credentials
}

// Do performs a request. Non-2xx responses are returned together with a
// *heroku.ResponseError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	headers := make(http.Header, len(req.Headers))
	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	resp, err := c.Send(ctx, &heroku.Request{
		Method:  req.Method,
		Path:    req.Path,
		Query:   req.Query,
		Headers: headers,
		Body:    req.Body,
	})
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return resp, heroku.ClassifyFailure(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

// Send performs a single exchange and returns the response whatever its
// status. Only failures to obtain a response are errors.
func (c *Client) Send(ctx context.Context, req *heroku.Request) (*heroku.Response, error) {
	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	resp, err := c.roundTrip(ctx, req)

	if c.interceptors != nil {
		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp, err)
		if interceptErr != nil && err == nil {
			return nil, interceptErr
		}
	}

	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) roundTrip(ctx context.Context, req *heroku.Request) (*heroku.Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, &heroku.InvalidResponseError{Err: err}
	}

	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  httpReq.Method,
			"url":     httpReq.URL.String(),
			"headers": auth.Redact(httpReq.Header),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &heroku.InvalidResponseError{Err: fmt.Errorf("executing request: %w", err)}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &heroku.InvalidResponseError{
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     httpResp.StatusCode,
			"duration":   time.Since(start).String(),
			"request_id": httpResp.Header.Get(constants.RequestIDHeader),
		})
	}

	return &heroku.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, req *heroku.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.AcceptHeaderPrefix+"; version="+c.acceptVersion)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	auth.Attach(httpReq.Header, c.credentials)

	return httpReq, nil
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("HTTP Retry", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}
