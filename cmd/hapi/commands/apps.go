package commands

import (
	"fmt"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAppsCommand creates the apps command group.
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"app"},
		Short:   "Manage applications",
		Long:    "List, create, update and delete Heroku applications",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsInfoCommand())
	cmd.AddCommand(newAppsCreateCommand())
	cmd.AddCommand(newAppsUpdateCommand())
	cmd.AddCommand(newAppsDeleteCommand())

	return cmd
}

func appRows(app *heroku.App) [][2]string {
	return [][2]string{
		{"ID", app.ID},
		{"Name", app.Name},
		{"Owner", app.Owner.Email},
		{"Region", nameOr(&app.Region)},
		{"Stack", nameOr(&app.Stack)},
		{"Build Stack", nameOr(&app.BuildStack)},
		{"Team", nameOr(app.Team)},
		{"Space", nameOr(app.Space)},
		{"Maintenance", yesNo(app.Maintenance)},
		{"Web URL", app.WebURL},
		{"Git URL", app.GitURL},
		{"Slug Size", formatBytes(app.SlugSize)},
		{"Repo Size", formatBytes(app.RepoSize)},
		{"Released", formatTimePtr(app.ReleasedAt)},
		{"Created", formatTime(app.CreatedAt)},
	}
}

func newAppsListCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long:  "List the applications visible to the account, or those owned by --user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			var apps *[]heroku.App
			if user != "" {
				apps, err = heroku.Execute(cmd.Context(), client, heroku.NewUserAppList(user))
			} else {
				apps, err = heroku.Execute(cmd.Context(), client, heroku.NewAppList())
			}

			if err != nil {
				return fmt.Errorf("failed to list apps: %w", err)
			}

			return printResult(cmd.OutOrStdout(), apps, func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Region", "Stack", "Owner", "Updated")

				for _, app := range *apps {
					_ = table.Append(app.Name, app.ID, nameOr(&app.Region), nameOr(&app.Stack),
						app.Owner.Email, formatTime(app.UpdatedAt))
				}
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "list apps owned by this account id or email")

	return cmd
}

func newAppsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info APP",
		Short: "Show application details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			app, err := heroku.Execute(cmd.Context(), client, heroku.NewAppDetails(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get app: %w", err)
			}

			return printResult(cmd.OutOrStdout(), app, propertyTable(appRows(app)))
		},
	}
}

func newAppsCreateCommand() *cobra.Command {
	var region, stack string

	cmd := &cobra.Command{
		Use:   "create [NAME]",
		Short: "Create an application",
		Long:  "Create an application. Heroku picks a name when NAME is omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create := heroku.NewAppCreate()
			if len(args) == 1 {
				create.WithName(args[0])
			}

			if region != "" {
				create.WithRegion(region)
			}

			if stack != "" {
				create.WithStack(stack)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			app, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to create app: %w", err)
			}

			return printResult(cmd.OutOrStdout(), app, propertyTable(appRows(app)))
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "region name or id")
	cmd.Flags().StringVar(&stack, "stack", "", "stack name or id")

	return cmd
}

func newAppsUpdateCommand() *cobra.Command {
	var (
		name        string
		buildStack  string
		maintenance bool
	)

	cmd := &cobra.Command{
		Use:   "update APP",
		Short: "Update an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := heroku.NewAppUpdate(args[0])
			changed := false

			if name != "" {
				update.WithName(name)

				changed = true
			}

			if buildStack != "" {
				update.WithBuildStack(buildStack)

				changed = true
			}

			if cmd.Flags().Changed("maintenance") {
				update.WithMaintenance(maintenance)

				changed = true
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			app, err := heroku.Execute(cmd.Context(), client, update)
			if err != nil {
				return fmt.Errorf("failed to update app: %w", err)
			}

			return printResult(cmd.OutOrStdout(), app, propertyTable(appRows(app)))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new app name")
	cmd.Flags().StringVar(&buildStack, "build-stack", "", "stack for the next build")
	cmd.Flags().BoolVar(&maintenance, "maintenance", false, "maintenance mode")

	return cmd
}

func newAppsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete APP",
		Short: "Delete an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, fmt.Sprintf("Delete app %s?", args[0])); err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			app, err := heroku.Execute(cmd.Context(), client, heroku.NewAppDelete(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete app: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted app %s\n", app.Name)

			return nil
		},
	}

	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}
