package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/fivetwenty-io/hapi/internal/client"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ExecuteTestCase describes one descriptor round trip against a test server.
type ExecuteTestCase[T any] struct {
	Name           string
	Endpoint       heroku.Endpoint[T]
	ExpectedMethod string
	ExpectedPath   string
	ExpectedBody   string // JSON; empty means no body is expected
	StatusCode     int
	Response       string
	WantErr        bool
	ErrMessage     string
	Check          func(t *testing.T, result *T)
}

// NewTestClient creates a client for baseURL with a fixed token.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &heroku.Config{
		APIEndpoint: baseURL,
		Credentials: heroku.NewUserAuthToken("test-token"),
	})
	require.NoError(t, err)

	return client
}

// RunExecuteTests runs each case through heroku.Execute and the real transport.
func RunExecuteTests[T any](t *testing.T, tests []ExecuteTestCase[T]) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedMethod, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.ExpectedBody == "" {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, testCase.ExpectedBody, string(body))
					assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)
				_, _ = writer.Write([]byte(testCase.Response))
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			result, err := heroku.Execute(context.Background(), client, testCase.Endpoint)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}
