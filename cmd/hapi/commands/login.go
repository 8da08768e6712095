package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/fivetwenty-io/hapi/pkg/herokuclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Platform API token",
		Long: `Verify a Platform API token against the account endpoint and store it in
the configuration file. Without --api-key the token is read from the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				var err error

				token, err = readToken(cmd)
				if err != nil {
					return err
				}
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return constants.ErrEmptyToken
			}

			endpoint := viper.GetString("api")

			client, err := herokuclient.NewWithEndpoint(cmd.Context(), endpoint, token)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			account, err := client.GetAccount(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			if err := persister().Update(func(config *Config) error {
				config.Token = token
				if endpoint != "" {
					config.API = endpoint
				}

				return nil
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", account.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "api-key", "", "Platform API token (prompted for when omitted)")

	return cmd
}

// readToken prompts for a token, hiding input on a terminal.
func readToken(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "API token: ")

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return line, nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		Long:  "Remove the Platform API token from the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := persister().Update(func(config *Config) error {
				config.Token = ""

				return nil
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			account, err := client.GetAccount(cmd.Context())
			if err != nil {
				if heroku.IsUnauthorized(err) {
					return constants.ErrNoTokenConfigured
				}

				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), account.Email)

			return nil
		},
	}
}
