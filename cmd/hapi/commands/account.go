package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command group.
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acct"},
		Short:   "Inspect the authenticated account",
		Long:    "View account details, features, keys, invoices, credits and rate limits",
	}

	cmd.AddCommand(newAccountInfoCommand())
	cmd.AddCommand(newAccountUpdateCommand())
	cmd.AddCommand(newAccountRateLimitsCommand())
	cmd.AddCommand(newAccountFeaturesCommand())
	cmd.AddCommand(newAccountKeysCommand())
	cmd.AddCommand(newAccountInvoicesCommand())
	cmd.AddCommand(newAccountCreditsCommand())
	cmd.AddCommand(newAccountTransfersCommand())

	return cmd
}

func accountRows(account *heroku.Account) [][2]string {
	return [][2]string{
		{"ID", account.ID},
		{"Email", account.Email},
		{"Name", valueOr(account.Name)},
		{"Verified", yesNo(account.Verified)},
		{"Two-Factor", yesNo(account.TwoFactorAuthentication)},
		{"Beta", yesNo(account.Beta)},
		{"Default Team", nameOr(account.DefaultTeam)},
		{"Last Login", formatTimePtr(account.LastLogin)},
		{"Created", formatTime(account.CreatedAt)},
	}
}

func newAccountInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show account details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			account, err := client.GetAccount(cmd.Context())
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), account, propertyTable(accountRows(account)))
		},
	}
}

func newAccountUpdateCommand() *cobra.Command {
	var (
		name          string
		allowTracking bool
		beta          bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update account settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			update := heroku.NewAccountUpdate()
			changed := false

			if cmd.Flags().Changed("name") {
				update.WithName(name)

				changed = true
			}

			if cmd.Flags().Changed("allow-tracking") {
				update.WithAllowTracking(allowTracking)

				changed = true
			}

			if cmd.Flags().Changed("beta") {
				update.WithBeta(beta)

				changed = true
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			account, err := heroku.Execute(cmd.Context(), client, update)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			return printResult(cmd.OutOrStdout(), account, propertyTable(accountRows(account)))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().BoolVar(&allowTracking, "allow-tracking", false, "allow third party tracking")
	cmd.Flags().BoolVar(&beta, "beta", false, "receive beta emails")

	return cmd
}

func newAccountRateLimitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rate-limits",
		Short: "Show the remaining request budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			limits, err := client.GetRateLimits(cmd.Context())
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), limits, propertyTable([][2]string{
				{"Remaining", strconv.Itoa(limits.Remaining)},
			}))
		},
	}
}

func newAccountFeaturesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "List account features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			features, err := heroku.Execute(cmd.Context(), client, heroku.NewAccountFeatureList())
			if err != nil {
				return fmt.Errorf("failed to list account features: %w", err)
			}

			return printResult(cmd.OutOrStdout(), features, func(table *tablewriter.Table) {
				table.Header("Name", "State", "Enabled", "Description")

				for _, feature := range *features {
					_ = table.Append(feature.Name, feature.State, yesNo(feature.Enabled), feature.Description)
				}
			})
		},
	}

	cmd.AddCommand(newAccountFeatureToggleCommand("enable", true))
	cmd.AddCommand(newAccountFeatureToggleCommand("disable", false))

	return cmd
}

func newAccountFeatureToggleCommand(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FEATURE",
		Short: use + " an account feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			feature, err := heroku.Execute(cmd.Context(), client, heroku.NewAccountFeatureUpdate(args[0], enabled))
			if err != nil {
				return fmt.Errorf("failed to update account feature: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: enabled=%s\n", feature.Name, yesNo(feature.Enabled))

			return nil
		},
	}
}

func newAccountKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List SSH keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			keys, err := heroku.Execute(cmd.Context(), client, heroku.NewKeyList())
			if err != nil {
				return fmt.Errorf("failed to list keys: %w", err)
			}

			return printResult(cmd.OutOrStdout(), keys, func(table *tablewriter.Table) {
				table.Header("ID", "Comment", "Fingerprint", "Created")

				for _, key := range *keys {
					_ = table.Append(key.ID, key.Comment, key.Fingerprint, formatTime(key.CreatedAt))
				}
			})
		},
	}
}

func newAccountInvoicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invoices",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			invoices, err := heroku.Execute(cmd.Context(), client, heroku.NewInvoiceList())
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			return printResult(cmd.OutOrStdout(), invoices, func(table *tablewriter.Table) {
				table.Header("Number", "Period Start", "Period End", "Total")

				for _, invoice := range *invoices {
					_ = table.Append(
						strconv.Itoa(invoice.Number),
						invoice.PeriodStart,
						invoice.PeriodEnd,
						strconv.FormatFloat(invoice.Total, 'f', 2, 64),
					)
				}
			})
		},
	}
}

func newAccountCreditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "List credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			credits, err := heroku.Execute(cmd.Context(), client, heroku.NewCreditList())
			if err != nil {
				return fmt.Errorf("failed to list credits: %w", err)
			}

			return printResult(cmd.OutOrStdout(), credits, func(table *tablewriter.Table) {
				table.Header("Title", "Amount", "Balance", "Expires")

				for _, credit := range *credits {
					_ = table.Append(
						credit.Title,
						strconv.FormatFloat(credit.Amount, 'f', 2, 64),
						strconv.FormatFloat(credit.Balance, 'f', 2, 64),
						formatTime(credit.ExpiresAt),
					)
				}
			})
		},
	}
}

func newAccountTransfersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transfers",
		Short: "List app transfers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			transfers, err := heroku.Execute(cmd.Context(), client, heroku.NewAppTransferList())
			if err != nil {
				return fmt.Errorf("failed to list app transfers: %w", err)
			}

			return printResult(cmd.OutOrStdout(), transfers, func(table *tablewriter.Table) {
				table.Header("App", "Owner", "Recipient", "State")

				for _, transfer := range *transfers {
					_ = table.Append(transfer.App.Name, transfer.Owner.Email, transfer.Recipient.Email, transfer.State)
				}
			})
		},
	}
}
