package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// setupViper points the CLI at server and a temporary config file. viper is
// global, so tests using it do not run in parallel.
func setupViper(t *testing.T, serverURL string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	viper.Reset()
	viper.Set("config", configPath)
	viper.Set("api", serverURL)
	viper.Set("token", "test-token")
	viper.Set("output", "json")

	t.Cleanup(viper.Reset)

	return configPath
}

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

//nolint:paralleltest // viper is global
func TestAppsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/apps", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.heroku+json; version=3", r.Header.Get("Accept"))

		_, _ = w.Write([]byte(`[{"id":"a1","name":"web","region":{"name":"us"}},{"id":"a2","name":"worker"}]`))
	}))
	defer server.Close()

	setupViper(t, server.URL)

	out, err := run(t, NewAppsCommand(), "", "list")
	require.NoError(t, err)

	var apps []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &apps))
	require.Len(t, apps, 2)
	assert.Equal(t, "web", apps[0]["name"])
}

//nolint:paralleltest // viper is global
func TestAppsInfo_TableOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apps/web", r.URL.Path)

		_, _ = w.Write([]byte(`{"id":"a1","name":"web","owner":{"email":"me@example.com"},"slug_size":2048}`))
	}))
	defer server.Close()

	setupViper(t, server.URL)
	viper.Set("output", "table")

	out, err := run(t, NewAppsCommand(), "", "info", "web")
	require.NoError(t, err)
	assert.Contains(t, out, "me@example.com")
	assert.Contains(t, out, "2.0 KB")
}

//nolint:paralleltest // viper is global
func TestAppsDelete_RequiresConfirmation(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{"id":"a1","name":"web"}`))
	}))
	defer server.Close()

	setupViper(t, server.URL)

	_, err := run(t, NewAppsCommand(), "n\n", "delete", "web")
	require.ErrorIs(t, err, ErrAborted)
	assert.Zero(t, calls)

	out, err := run(t, NewAppsCommand(), "y\n", "delete", "web")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted app web")

	out, err = run(t, NewAppsCommand(), "", "delete", "web", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted app web")
	assert.Equal(t, 2, calls)
}

//nolint:paralleltest // viper is global
func TestAddonsCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/apps/web/addons", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{
			"plan":       "heroku-postgresql:essential-0",
			"config":     map[string]interface{}{"version": "16"},
			"attachment": map[string]interface{}{"name": "DATABASE"},
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ad1","name":"postgresql-curly-1","state":"provisioning"}`))
	}))
	defer server.Close()

	setupViper(t, server.URL)

	out, err := run(t, NewAddonsCommand(), "",
		"create", "heroku-postgresql:essential-0", "--app", "web", "--as", "DATABASE", "-s", "version=16")
	require.NoError(t, err)
	assert.Contains(t, out, "postgresql-curly-1")
}

//nolint:paralleltest // viper is global
func TestBuildsRequireApp(t *testing.T) {
	setupViper(t, "http://127.0.0.1:0")
	t.Setenv("HEROKU_APP", "")

	_, err := run(t, NewBuildsCommand(), "", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--app")
}

//nolint:paralleltest // viper is global
func TestBuildsPurgeCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/apps/web/build-cache", r.URL.Path)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	setupViper(t, server.URL)

	out, err := run(t, NewBuildsCommand(), "", "purge-cache", "-a", "web", "-f")
	require.NoError(t, err)
	assert.Contains(t, out, "Purged build cache of web")
}

//nolint:paralleltest // viper is global
func TestSpacesOutboundRulesSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/spaces/prod/outbound-ruleset", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []interface{}{
			map[string]interface{}{"target": "0.0.0.0/0", "protocol": "tcp", "from_port": float64(443), "to_port": float64(443)},
		}, body["rules"])

		_, _ = w.Write([]byte(`{"id":"r1","rules":[{"target":"0.0.0.0/0","protocol":"tcp","from_port":443,"to_port":443}]}`))
	}))
	defer server.Close()

	setupViper(t, server.URL)

	_, err := run(t, NewSpacesCommand(), "", "outbound-rules", "set", "prod", "--rule", "0.0.0.0/0:tcp:443")
	require.NoError(t, err)
}

//nolint:paralleltest // viper is global
func TestAPIErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"id":"not_found","message":"Couldn't find that app."}`))
	}))
	defer server.Close()

	setupViper(t, server.URL)

	_, err := run(t, NewAppsCommand(), "", "info", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Couldn't find that app.")
}

//nolint:paralleltest // viper is global
func TestConfigSetShowUnset(t *testing.T) {
	configPath := setupViper(t, "")
	viper.Set("output", "yaml")

	_, err := run(t, NewConfigCommand(), "", "set", "retry_max", "3")
	require.NoError(t, err)

	_, err = run(t, NewConfigCommand(), "", "set", "token", "0123456789")
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := run(t, NewConfigCommand(), "", "show")
	require.NoError(t, err)

	var shown Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, 3, shown.RetryMax)
	assert.Equal(t, "0123***", shown.Token)

	_, err = run(t, NewConfigCommand(), "", "unset", "retry_max")
	require.NoError(t, err)

	config, err := NewConfigPersister(configPath).Load()
	require.NoError(t, err)
	assert.Zero(t, config.RetryMax)
	assert.Equal(t, "0123456789", config.Token)

	_, err = run(t, NewConfigCommand(), "", "set", "bogus", "x")
	require.Error(t, err)

	_, err = run(t, NewConfigCommand(), "", "set", "output", "xml")
	require.ErrorIs(t, err, ErrUnsupportedOutput)

	_, err = run(t, NewConfigCommand(), "", "clear", "--force")
	require.NoError(t, err)

	config, err = NewConfigPersister(configPath).Load()
	require.NoError(t, err)
	assert.Equal(t, Config{}, *config)
}

//nolint:paralleltest // viper is global
func TestLoginAndLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account", r.URL.Path)

		if r.Header.Get("Authorization") != "Bearer new-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"id":"unauthorized","message":"Invalid credentials provided."}`))

			return
		}

		_, _ = w.Write([]byte(`{"id":"u1","email":"me@example.com"}`))
	}))
	defer server.Close()

	configPath := setupViper(t, server.URL)

	_, err := run(t, NewLoginCommand(), "bad-token\n")
	require.Error(t, err)

	_, statErr := os.Stat(configPath)
	require.ErrorIs(t, statErr, os.ErrNotExist)

	out, err := run(t, NewLoginCommand(), "new-token\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as me@example.com")

	config, err := NewConfigPersister(configPath).Load()
	require.NoError(t, err)
	assert.Equal(t, "new-token", config.Token)
	assert.Equal(t, server.URL, config.API)

	_, err = run(t, NewLogoutCommand(), "")
	require.NoError(t, err)

	config, err = NewConfigPersister(configPath).Load()
	require.NoError(t, err)
	assert.Empty(t, config.Token)
	assert.Equal(t, server.URL, config.API)
}

//nolint:paralleltest // viper is global
func TestLoginRejectsEmptyToken(t *testing.T) {
	setupViper(t, "http://127.0.0.1:0")

	_, err := run(t, NewLoginCommand(), "   \n")
	require.Error(t, err)
}
