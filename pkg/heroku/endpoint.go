package heroku

import (
	"context"
	"errors"
	"net/url"
)

// Endpoint describes one Platform API operation whose success payload is T.
// Path is relative to the API base and carries no leading slash.
type Endpoint[T any] interface {
	Method() string
	Path() string
	NewResult() *T
}

// BodyEndpoint is implemented by endpoints that send a JSON body.
type BodyEndpoint interface {
	Body() any
}

// QueryEndpoint is implemented by endpoints that send query parameters.
type QueryEndpoint interface {
	Query() url.Values
}

// Returns declares the success payload of an endpoint when embedded in its
// descriptor.
type Returns[T any] struct{}

// NewResult allocates the decode target for a success body.
func (Returns[T]) NewResult() *T {
	return new(T)
}

// Sender performs a single HTTP exchange. Implementations attach credentials
// and return non-success responses without error; only failures to obtain a
// response are reported as errors.
type Sender interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// NewRequest builds the wire request for an endpoint.
func NewRequest[T any](endpoint Endpoint[T]) *Request {
	req := &Request{
		Method: endpoint.Method(),
		Path:   endpoint.Path(),
	}

	if withBody, ok := endpoint.(BodyEndpoint); ok {
		req.Body = withBody.Body()
	}

	if withQuery, ok := endpoint.(QueryEndpoint); ok {
		req.Query = withQuery.Query()
	}

	return req
}

// Execute sends the endpoint's request and decodes the success payload.
// Failures are *ResponseError for non-success statuses and
// *InvalidResponseError for everything else.
func Execute[T any](ctx context.Context, sender Sender, endpoint Endpoint[T]) (*T, error) {
	resp, err := send(ctx, sender, endpoint)
	if err != nil {
		return nil, err
	}

	return decodeInto(resp, endpoint.NewResult())
}

// ExecuteRaw sends the endpoint's request and returns the response unchanged
// on success. Non-success statuses are classified as in Execute.
func ExecuteRaw[T any](ctx context.Context, sender Sender, endpoint Endpoint[T]) (*Response, error) {
	resp, err := send(ctx, sender, endpoint)
	if err != nil {
		return nil, err
	}

	return MatchRawResponse(resp)
}

func send[T any](ctx context.Context, sender Sender, endpoint Endpoint[T]) (*Response, error) {
	if sender == nil {
		return nil, ErrNilSender
	}

	if endpoint == nil {
		return nil, ErrNilEndpoint
	}

	resp, err := sender.Send(ctx, NewRequest(endpoint))
	if err != nil {
		return nil, asFailure(err)
	}

	return resp, nil
}

func asFailure(err error) error {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return err
	}

	invalidErr := &InvalidResponseError{}
	if errors.As(err, &invalidErr) {
		return err
	}

	return &InvalidResponseError{Err: err}
}
