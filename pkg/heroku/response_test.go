package heroku

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResponse_Success(t *testing.T) {
	t.Parallel()

	resp := &Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"id":"01234567-89ab-cdef-0123-456789abcdef","name":"example"}`),
	}

	app, err := MatchResponse[App](resp)
	require.NoError(t, err)
	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", app.ID)
	assert.Equal(t, "example", app.Name)
}

func TestMatchResponse_UnparseableSuccessBody(t *testing.T) {
	t.Parallel()

	resp := &Response{StatusCode: http.StatusOK, Body: []byte(`{"id":`)}

	app, err := MatchResponse[App](resp)
	require.Error(t, err)
	assert.Nil(t, app)

	var invalidErr *InvalidResponseError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, http.StatusOK, invalidErr.StatusCode)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestMatchResponse_EmptySuccessBody(t *testing.T) {
	t.Parallel()

	_, err := MatchResponse[App](&Response{StatusCode: http.StatusOK})
	require.ErrorIs(t, err, ErrEmptyBody)

	empty, err := MatchResponse[Empty](&Response{StatusCode: http.StatusNoContent})
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestMatchResponse_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected APIError
	}{
		{
			name:     "error envelope",
			status:   http.StatusNotFound,
			body:     `{"id":"not_found","message":"Couldn't find that app.","url":"https://devcenter.heroku.com/articles/platform-api-reference"}`,
			expected: APIError{ID: "not_found", Message: "Couldn't find that app.", URL: "https://devcenter.heroku.com/articles/platform-api-reference"},
		},
		{
			name:     "malformed body",
			status:   http.StatusInternalServerError,
			body:     `<html>oops</html>`,
			expected: APIError{},
		},
		{
			name:     "empty body",
			status:   http.StatusBadGateway,
			body:     "",
			expected: APIError{},
		},
		{
			name:     "redirect",
			status:   http.StatusFound,
			body:     `{"id":"moved","message":"elsewhere"}`,
			expected: APIError{ID: "moved", Message: "elsewhere"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, err := MatchResponse[App](&Response{StatusCode: tt.status, Body: []byte(tt.body)})
			require.Error(t, err)
			assert.Nil(t, app)

			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, tt.expected, respErr.APIError)
		})
	}
}

func TestMatchRawResponse(t *testing.T) {
	t.Parallel()

	ok := &Response{StatusCode: http.StatusOK, Body: []byte("not json at all")}

	resp, err := MatchRawResponse(ok)
	require.NoError(t, err)
	assert.Same(t, ok, resp)

	_, err = MatchRawResponse(&Response{StatusCode: http.StatusForbidden, Body: []byte(`{"id":"forbidden","message":"no"}`)})
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
}

func TestEmpty_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	accepted := []string{"", "null", "{}", `{"ignored":true}`, "[]", "[{}, {}]", " [ null ] "}
	for _, body := range accepted {
		var e Empty
		require.NoError(t, e.UnmarshalJSON([]byte(body)), "body %q", body)
	}

	rejected := []string{"42", `"text"`, "[1]", "{"}
	for _, body := range rejected {
		var e Empty
		require.Error(t, e.UnmarshalJSON([]byte(body)), "body %q", body)
	}
}

func TestMatchResponse_EmptyVariants(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"{}", "[]", "null", ""} {
		result, err := MatchResponse[Empty](&Response{StatusCode: http.StatusOK, Body: []byte(body)})
		require.NoError(t, err, "body %q", body)
		assert.Equal(t, &Empty{}, result)
	}

	list, err := MatchResponse[[]Empty](&Response{StatusCode: http.StatusOK, Body: []byte("[{}, {}]")})
	require.NoError(t, err)
	assert.Len(t, *list, 2)
}

func TestResponse_Headers(t *testing.T) {
	t.Parallel()

	resp := &Response{
		StatusCode: http.StatusOK,
		Headers: http.Header{
			"Ratelimit-Remaining": []string{"4499"},
			"Request-Id":          []string{"abc-123"},
		},
	}

	remaining, ok := resp.RateLimitRemaining()
	assert.True(t, ok)
	assert.Equal(t, 4499, remaining)
	assert.Equal(t, "abc-123", resp.RequestID())

	_, ok = (&Response{Headers: http.Header{}}).RateLimitRemaining()
	assert.False(t, ok)
}
