package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/fivetwenty-io/hapi/internal/client"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, heroku.ErrConfigRequired)
	})

	t.Run("requires API endpoint", func(t *testing.T) {
		t.Parallel()

		config := &heroku.Config{}
		_, err := New(context.Background(), config)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API endpoint is required")
	})

	t.Run("creates client with token", func(t *testing.T) {
		t.Parallel()

		config := &heroku.Config{
			APIEndpoint: "https://api.example.com/",
			Token:       "test-token",
		}

		client, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, heroku.NewUserAuthToken("test-token"), client.Credentials())
		assert.Equal(t, "https://api.example.com", client.BaseURL())
	})

	t.Run("explicit credentials override token", func(t *testing.T) {
		t.Parallel()

		creds := heroku.NewUserAuthToken("explicit")
		config := &heroku.Config{
			APIEndpoint: "https://api.example.com",
			Token:       "ignored",
			Credentials: creds,
		}

		client, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Same(t, creds, client.Credentials())
	})

	t.Run("creates client without authentication", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &heroku.Config{APIEndpoint: "https://api.example.com"})
		require.NoError(t, err)
		assert.Nil(t, client.Credentials())
	})
}

func TestClient_GetAccount(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account", request.URL.Path)
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"id": "01234567-89ab-cdef-0123-456789abcdef",
			"email": "username@example.com",
			"verified": true,
			"created_at": "2012-01-01T12:00:00Z",
			"updated_at": "2012-01-01T12:00:00Z"
		}`))
	}))
	defer server.Close()

	client, err := New(context.Background(), &heroku.Config{APIEndpoint: server.URL, Token: "test-token"})
	require.NoError(t, err)

	account, err := client.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "username@example.com", account.Email)
	assert.True(t, account.Verified)
	assert.Equal(t, 2012, account.CreatedAt.Year())
}

func TestClient_GetRateLimits(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/account/rate-limits", request.URL.Path)
			_, _ = writer.Write([]byte(`{"remaining": 4500}`))
		}))
		defer server.Close()

		client, err := New(context.Background(), &heroku.Config{APIEndpoint: server.URL})
		require.NoError(t, err)

		limits, err := client.GetRateLimits(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4500, limits.Remaining)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"id":"unauthorized","message":"Invalid credentials provided."}`))
		}))
		defer server.Close()

		client, err := New(context.Background(), &heroku.Config{APIEndpoint: server.URL, Token: "bad"})
		require.NoError(t, err)

		_, err = client.GetRateLimits(context.Background())
		require.Error(t, err)
		assert.True(t, heroku.IsUnauthorized(err))
		assert.Contains(t, err.Error(), "getting rate limits")
	})
}

func TestClient_RetryConfig(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if attempts.Add(1) == 1 {
			writer.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = writer.Write([]byte(`{"remaining": 10}`))
	}))
	defer server.Close()

	client, err := New(context.Background(), &heroku.Config{
		APIEndpoint:  server.URL,
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	limits, err := client.GetRateLimits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, limits.Remaining)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_ExecuteThroughClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodDelete, request.Method)
		assert.Equal(t, "/apps/my-app/build-cache", request.URL.Path)
		writer.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := New(context.Background(), &heroku.Config{APIEndpoint: server.URL, Token: "t"})
	require.NoError(t, err)

	_, err = heroku.Execute[heroku.Empty](context.Background(), client, heroku.NewBuildCacheDelete("my-app"))
	require.NoError(t, err)
}
