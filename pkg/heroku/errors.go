package heroku

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/hapi/internal/constants"
)

// APIError is the error envelope returned by the Platform API.
type APIError struct {
	ID      string `json:"id"            yaml:"id"`
	Message string `json:"message"       yaml:"message"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.ID == "" && e.Message == "":
		return "unknown error"
	case e.ID == "":
		return e.Message
	case e.Message == "":
		return e.ID
	}

	return fmt.Sprintf("%s: %s", e.ID, e.Message)
}

// ResponseError is returned for every non-success HTTP status. The status is
// always set; APIError is zero when the body could not be parsed.
type ResponseError struct {
	StatusCode int
	APIError
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("heroku: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.APIError.Error())
}

// Unwrap exposes the parsed envelope to errors.As.
func (e *ResponseError) Unwrap() error {
	return &e.APIError
}

// InvalidResponseError reports a call that produced no usable payload: the
// request could not be sent, the body could not be read, or a success body
// did not decode into the expected type. StatusCode is 0 when no response
// was received.
type InvalidResponseError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *InvalidResponseError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("heroku: invalid response: %v", e.Err)
	}

	return fmt.Sprintf("heroku: invalid response (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying transport or decoding error.
func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidResponse.
func (e *InvalidResponseError) Is(target error) bool {
	return target == ErrInvalidResponse
}

// Static errors for err113 compliance.
var (
	ErrInvalidResponse     = errors.New("invalid response")
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNilEndpoint         = errors.New("endpoint is nil")
	ErrNilSender           = errors.New("sender is nil")
	ErrEmptyBody           = errors.New("empty response body")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return matchFailure(err, http.StatusNotFound, constants.ErrorIDNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return matchFailure(err, http.StatusUnauthorized, constants.ErrorIDUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return matchFailure(err, http.StatusForbidden, constants.ErrorIDForbidden)
}

// IsRateLimited checks if the error reports an exhausted request budget.
func IsRateLimited(err error) bool {
	return matchFailure(err, http.StatusTooManyRequests, constants.ErrorIDRateLimit)
}

// StatusCode returns the HTTP status carried by a classified failure, or 0.
func StatusCode(err error) int {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}

	invalidErr := &InvalidResponseError{}
	if errors.As(err, &invalidErr) {
		return invalidErr.StatusCode
	}

	return 0
}

func matchFailure(err error, status int, id string) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == status || respErr.ID == id
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ID == id
	}

	return false
}

// ParseAPIError parses an error envelope from JSON. Unlike the classifier it
// reports malformed input.
func ParseAPIError(data []byte) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal api error: %w", err)
	}

	return &apiErr, nil
}
