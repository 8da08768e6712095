package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	return names
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd  *cobra.Command
		use  string
		subs []string
	}{
		{NewAccountCommand(), "account", []string{"info", "update", "rate-limits", "features", "keys", "invoices", "credits", "transfers"}},
		{NewAppsCommand(), "apps", []string{"list", "info", "create", "update", "delete"}},
		{NewAddonsCommand(), "addons", []string{
			"list", "info", "create", "delete", "resolve", "attach",
			"resolve-attachment", "mark-provisioned", "mark-deprovisioned", "webhook",
		}},
		{NewBuildsCommand(), "builds", []string{"list", "info", "create", "purge-cache"}},
		{NewCollaboratorsCommand(), "collaborators", []string{"list", "info", "add", "remove"}},
		{NewSpacesCommand(), "spaces", []string{
			"list", "info", "create", "rename", "delete", "nat", "transfer",
			"members", "vpn", "inbound-rules", "outbound-rules",
		}},
		{NewConfigCommand(), "config", []string{"show", "set", "unset", "clear"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.use, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.ElementsMatch(t, tt.subs, subcommandNames(tt.cmd))
		})
	}
}

func TestDestructiveCommandsHaveForceFlag(t *testing.T) {
	t.Parallel()

	paths := [][]string{
		{"apps", "delete"},
		{"addons", "delete"},
		{"builds", "purge-cache"},
		{"collaborators", "remove"},
		{"spaces", "delete"},
		{"spaces", "vpn", "delete"},
		{"config", "clear"},
	}

	roots := map[string]*cobra.Command{
		"apps":          NewAppsCommand(),
		"addons":        NewAddonsCommand(),
		"builds":        NewBuildsCommand(),
		"collaborators": NewCollaboratorsCommand(),
		"spaces":        NewSpacesCommand(),
		"config":        NewConfigCommand(),
	}

	for _, path := range paths {
		cmd := roots[path[0]]
		for _, name := range path[1:] {
			cmd = findSubcommand(cmd, name)
			require.NotNil(t, cmd, "missing %v", path)
		}

		flag := cmd.Flags().Lookup(forceFlag)
		require.NotNil(t, flag, "missing --force on %v", path)
		assert.Equal(t, "f", flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestAddonsWebhookCommand(t *testing.T) {
	t.Parallel()

	cmd := newAddonsWebhookCommand()
	assert.Equal(t, "webhook ADDON", cmd.Use)

	level := cmd.Flags().Lookup("level")
	require.NotNil(t, level)
	assert.Equal(t, "notify", level.DefValue)

	for _, name := range []string{"include", "url", "secret", "authorization"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}
