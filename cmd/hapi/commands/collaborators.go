package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCollaboratorsCommand creates the collaborators command group.
func NewCollaboratorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collaborators",
		Aliases: []string{"access"},
		Short:   "Manage app collaborators",
	}

	cmd.AddCommand(newCollaboratorsListCommand())
	cmd.AddCommand(newCollaboratorsInfoCommand())
	cmd.AddCommand(newCollaboratorsAddCommand())
	cmd.AddCommand(newCollaboratorsRemoveCommand())

	return cmd
}

func permissionNames(permissions []heroku.CollaboratorPermission) string {
	names := make([]string, 0, len(permissions))
	for _, permission := range permissions {
		names = append(names, permission.Name)
	}

	return strings.Join(names, ", ")
}

func collaboratorTable(collaborators []heroku.Collaborator) renderTable {
	return func(table *tablewriter.Table) {
		table.Header("Email", "Role", "Permissions", "Created")

		for _, collaborator := range collaborators {
			_ = table.Append(collaborator.User.Email, valueOr(collaborator.Role),
				permissionNames(collaborator.Permissions), formatTime(collaborator.CreatedAt))
		}
	}
}

func newCollaboratorsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collaborators of an app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			collaborators, err := heroku.Execute(cmd.Context(), client, heroku.NewCollaboratorList(app))
			if err != nil {
				return fmt.Errorf("failed to list collaborators: %w", err)
			}

			return printResult(cmd.OutOrStdout(), collaborators, collaboratorTable(*collaborators))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")

	return cmd
}

func newCollaboratorsInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info EMAIL",
		Short: "Show a collaborator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			collaborator, err := heroku.Execute(cmd.Context(), client, heroku.NewCollaboratorDetails(app, args[0]))
			if err != nil {
				return fmt.Errorf("failed to get collaborator: %w", err)
			}

			return printResult(cmd.OutOrStdout(), collaborator, collaboratorTable([]heroku.Collaborator{*collaborator}))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")

	return cmd
}

func newCollaboratorsAddCommand() *cobra.Command {
	var silent bool

	cmd := &cobra.Command{
		Use:   "add EMAIL",
		Short: "Add a collaborator to an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			create := heroku.NewCollaboratorCreate(app, args[0])
			if silent {
				create.WithSilent(true)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			collaborator, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to add collaborator: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", collaborator.User.Email, collaborator.App.Name)

			return nil
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().BoolVar(&silent, "silent", false, "do not email the collaborator")

	return cmd
}

func newCollaboratorsRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove EMAIL",
		Short: "Remove a collaborator from an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			if err := confirm(cmd, fmt.Sprintf("Remove %s from %s?", args[0], app)); err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			collaborator, err := heroku.Execute(cmd.Context(), client, heroku.NewCollaboratorDelete(app, args[0]))
			if err != nil {
				return fmt.Errorf("failed to remove collaborator: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", collaborator.User.Email)

			return nil
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}
