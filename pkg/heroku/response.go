package heroku

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/hapi/internal/constants"
)

// Request is an outgoing call as seen by a Sender and by interceptors.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Headers  http.Header
	Body     any
	Metadata map[string]interface{}
}

// Response is a raw HTTP response with the body already read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess reports whether the status is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= constants.HTTPStatusSuccessMin && r.StatusCode <= constants.HTTPStatusSuccessMax
}

// RequestID returns the Request-Id header, if any.
func (r *Response) RequestID() string {
	return r.Headers.Get(constants.RequestIDHeader)
}

// RateLimitRemaining returns the RateLimit-Remaining header and whether it
// was present and numeric.
func (r *Response) RateLimitRemaining() (int, bool) {
	raw := r.Headers.Get(constants.RateLimitRemainingHeader)
	if raw == "" {
		return 0, false
	}

	remaining, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return remaining, true
}

// Empty is the success payload of endpoints that return {}, [] or nothing.
type Empty struct{}

// UnmarshalJSON accepts an object, null, or an array of objects.
func (e *Empty) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '{':
		var ignored map[string]json.RawMessage

		return json.Unmarshal(trimmed, &ignored)
	case '[':
		var items []json.RawMessage

		err := json.Unmarshal(trimmed, &items)
		if err != nil {
			return err
		}

		for _, item := range items {
			var elem Empty

			err = elem.UnmarshalJSON(item)
			if err != nil {
				return err
			}
		}

		return nil
	}

	return fmt.Errorf("%w: cannot decode %q into an empty value", ErrInvalidResponse, truncate(trimmed))
}

// MatchResponse classifies a raw response and decodes a success body into T.
func MatchResponse[T any](resp *Response) (*T, error) {
	return decodeInto(resp, new(T))
}

// MatchRawResponse classifies a raw response without decoding success bodies.
func MatchRawResponse(resp *Response) (*Response, error) {
	if resp.IsSuccess() {
		return resp, nil
	}

	return nil, ClassifyFailure(resp.StatusCode, resp.Body)
}

// ClassifyFailure builds the error for a non-success status. A body that is
// not a valid envelope yields a zero APIError; the parse error is dropped.
func ClassifyFailure(statusCode int, body []byte) *ResponseError {
	var apiErr APIError

	if len(bytes.TrimSpace(body)) > 0 {
		err := json.Unmarshal(body, &apiErr)
		if err != nil {
			apiErr = APIError{}
		}
	}

	return &ResponseError{StatusCode: statusCode, APIError: apiErr}
}

func decodeInto[T any](resp *Response, result *T) (*T, error) {
	if !resp.IsSuccess() {
		return nil, ClassifyFailure(resp.StatusCode, resp.Body)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		if _, ok := any(result).(*Empty); ok {
			return result, nil
		}

		return nil, &InvalidResponseError{StatusCode: resp.StatusCode, Err: ErrEmptyBody}
	}

	err := json.Unmarshal(resp.Body, result)
	if err != nil {
		return nil, &InvalidResponseError{StatusCode: resp.StatusCode, Err: err}
	}

	return result, nil
}

func truncate(data []byte) string {
	const limit = 64
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}

	return string(data)
}
