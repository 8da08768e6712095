package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBuildsCommand creates the builds command group.
func NewBuildsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "builds",
		Aliases: []string{"build"},
		Short:   "Manage builds",
		Long:    "Start builds from a source tarball, inspect them and purge the build cache",
	}

	cmd.AddCommand(newBuildsListCommand())
	cmd.AddCommand(newBuildsInfoCommand())
	cmd.AddCommand(newBuildsCreateCommand())
	cmd.AddCommand(newBuildsPurgeCacheCommand())

	return cmd
}

func buildRows(build *heroku.Build) [][2]string {
	buildpacks := make([]string, 0, len(build.Buildpacks))
	for _, bp := range build.Buildpacks {
		if bp.Name != "" {
			buildpacks = append(buildpacks, bp.Name)
		} else {
			buildpacks = append(buildpacks, bp.URL)
		}
	}

	release := constants.NotAvailable
	if build.Release != nil {
		release = build.Release.ID
	}

	return [][2]string{
		{"ID", build.ID},
		{"Status", build.Status},
		{"Stack", build.Stack},
		{"Source", build.SourceBlob.URL},
		{"Version", valueOr(build.SourceBlob.Version)},
		{"Buildpacks", strings.Join(buildpacks, ", ")},
		{"Release", release},
		{"User", build.User.Email},
		{"Output", build.OutputStreamURL},
		{"Created", formatTime(build.CreatedAt)},
	}
}

func newBuildsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builds of an app",
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

			builds, err := heroku.Execute(cmd.Context(), client, heroku.NewBuildList(app))
			if err != nil {
				return fmt.Errorf("failed to list builds: %w", err)
			}

			return printResult(cmd.OutOrStdout(), builds, func(table *tablewriter.Table) {
				table.Header("ID", "Status", "Stack", "User", "Created")

				for _, build := range *builds {
					_ = table.Append(build.ID, build.Status, build.Stack, build.User.Email, formatTime(build.CreatedAt))
				}
			})
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")

	return cmd
}

func newBuildsInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info BUILD",
		Short: "Show build details",
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

			build, err := heroku.Execute(cmd.Context(), client, heroku.NewBuildDetails(app, args[0]))
			if err != nil {
				return fmt.Errorf("failed to get build: %w", err)
			}

			return printResult(cmd.OutOrStdout(), build, propertyTable(buildRows(build)))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")

	return cmd
}

func newBuildsCreateCommand() *cobra.Command {
	var (
		checksum   string
		version    string
		buildpacks []string
	)

	cmd := &cobra.Command{
		Use:   "create SOURCE_URL",
		Short: "Start a build from a source tarball",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			create := heroku.NewBuildCreate(app, args[0])
			if checksum != "" {
				create.WithChecksum(checksum)
			}

			if version != "" {
				create.WithVersion(version)
			}

			for _, bp := range buildpacks {
				create.Params.Buildpacks = append(create.Params.Buildpacks, heroku.Buildpack{URL: bp})
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			build, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to create build: %w", err)
			}

			return printResult(cmd.OutOrStdout(), build, propertyTable(buildRows(build)))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().StringVar(&checksum, "checksum", "", "tarball checksum, e.g. SHA256:...")
	cmd.Flags().StringVar(&version, "version", "", "source version, e.g. a commit sha")
	cmd.Flags().StringSliceVarP(&buildpacks, "buildpack", "b", nil, "buildpack URL (repeatable)")

	return cmd
}

func newBuildsPurgeCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge-cache",
		Short: "Purge the build cache of an app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			if err := confirm(cmd, fmt.Sprintf("Purge the build cache of %s?", app)); err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			if _, err := heroku.Execute(cmd.Context(), client, heroku.NewBuildCacheDelete(app)); err != nil {
				return fmt.Errorf("failed to purge build cache: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Purged build cache of %s\n", app)

			return nil
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}
