package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSpacesCommand creates the spaces command group.
func NewSpacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "spaces",
		Aliases: []string{"space"},
		Short:   "Manage private spaces",
		Long:    "Create and inspect private spaces, their members, NAT, VPNs and network rules",
	}

	cmd.AddCommand(newSpacesListCommand())
	cmd.AddCommand(newSpacesInfoCommand())
	cmd.AddCommand(newSpacesCreateCommand())
	cmd.AddCommand(newSpacesRenameCommand())
	cmd.AddCommand(newSpacesDeleteCommand())
	cmd.AddCommand(newSpacesNATCommand())
	cmd.AddCommand(newSpacesTransferCommand())
	cmd.AddCommand(newSpacesMembersCommand())
	cmd.AddCommand(newSpacesVPNCommand())
	cmd.AddCommand(newSpacesInboundRulesCommand())
	cmd.AddCommand(newSpacesOutboundRulesCommand())

	return cmd
}

func spaceRows(space *heroku.Space) [][2]string {
	return [][2]string{
		{"ID", space.ID},
		{"Name", space.Name},
		{"Team", nameOr(&space.Team)},
		{"Region", nameOr(&space.Region)},
		{"State", space.State},
		{"Shield", yesNo(space.Shield)},
		{"CIDR", space.CIDR},
		{"Data CIDR", space.DataCIDR},
		{"Created", formatTime(space.CreatedAt)},
	}
}

func newSpacesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			spaces, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceList())
			if err != nil {
				return fmt.Errorf("failed to list spaces: %w", err)
			}

			return printResult(cmd.OutOrStdout(), spaces, func(table *tablewriter.Table) {
				table.Header("Name", "Team", "Region", "State", "Created")

				for _, space := range *spaces {
					_ = table.Append(space.Name, nameOr(&space.Team), nameOr(&space.Region), space.State,
						formatTime(space.CreatedAt))
				}
			})
		},
	}
}

func newSpacesInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info SPACE",
		Short: "Show space details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			space, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceDetails(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get space: %w", err)
			}

			return printResult(cmd.OutOrStdout(), space, propertyTable(spaceRows(space)))
		},
	}
}

func newSpacesCreateCommand() *cobra.Command {
	var (
		team     string
		region   string
		cidr     string
		dataCIDR string
		shield   bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create := heroku.NewSpaceCreate(args[0], team)
			if region != "" {
				create.WithRegion(region)
			}

			if cidr != "" {
				create.WithCIDR(cidr)
			}

			if dataCIDR != "" {
				create.WithDataCIDR(dataCIDR)
			}

			if cmd.Flags().Changed("shield") {
				create.WithShield(shield)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			space, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to create space: %w", err)
			}

			return printResult(cmd.OutOrStdout(), space, propertyTable(spaceRows(space)))
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "owning team name or id")
	cmd.Flags().StringVar(&region, "region", "", "region name or id")
	cmd.Flags().StringVar(&cidr, "cidr", "", "RFC-1918 block for dynos")
	cmd.Flags().StringVar(&dataCIDR, "data-cidr", "", "RFC-1918 block for data services")
	cmd.Flags().BoolVar(&shield, "shield", false, "create a shield space")

	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newSpacesRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename SPACE NEW_NAME",
		Short: "Rename a space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			space, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceUpdate(args[0]).WithName(args[1]))
			if err != nil {
				return fmt.Errorf("failed to rename space: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed space to %s\n", space.Name)

			return nil
		},
	}
}

func newSpacesDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete SPACE",
		Short: "Delete a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, fmt.Sprintf("Delete space %s?", args[0])); err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			space, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceDelete(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete space: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted space %s\n", space.Name)

			return nil
		},
	}

	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}

func newSpacesNATCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nat SPACE",
		Short: "Show outbound NAT addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			nat, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceNATDetails(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get space NAT: %w", err)
			}

			return printResult(cmd.OutOrStdout(), nat, propertyTable([][2]string{
				{"State", nat.State},
				{"Sources", strings.Join(nat.Sources, ", ")},
				{"Updated", formatTime(nat.UpdatedAt)},
			}))
		},
	}
}

func newSpacesTransferCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer SPACE NEW_OWNER",
		Short: "Transfer a space to another team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			transfer, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceTransferCreate(args[0], args[1]))
			if err != nil {
				return fmt.Errorf("failed to transfer space: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Transferred space %s to %s\n", transfer.Name, nameOr(&transfer.Team))

			return nil
		},
	}
}

func spacePermissionNames(permissions []heroku.SpacePermission) string {
	names := make([]string, 0, len(permissions))
	for _, permission := range permissions {
		names = append(names, permission.Name)
	}

	return strings.Join(names, ", ")
}

func newSpacesMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members SPACE",
		Short: "List space members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			members, err := heroku.Execute(cmd.Context(), client, heroku.NewSpaceAccessList(args[0]))
			if err != nil {
				return fmt.Errorf("failed to list space members: %w", err)
			}

			return printResult(cmd.OutOrStdout(), members, func(table *tablewriter.Table) {
				table.Header("Email", "Permissions")

				for _, member := range *members {
					_ = table.Append(member.User.Email, spacePermissionNames(member.Permissions))
				}
			})
		},
	}

	cmd.AddCommand(newSpacesMemberGrantCommand())

	return cmd
}

func newSpacesMemberGrantCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set SPACE ACCOUNT PERMISSION...",
		Short: "Replace the permissions of a space member",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			access, err := heroku.Execute(cmd.Context(), client,
				heroku.NewSpaceAccessUpdate(args[0], args[1], args[2:]...))
			if err != nil {
				return fmt.Errorf("failed to update space member: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", access.User.Email, spacePermissionNames(access.Permissions))

			return nil
		},
	}
}
