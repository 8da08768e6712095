package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAddonsCommand creates the addons command group.
func NewAddonsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addons",
		Aliases: []string{"addon"},
		Short:   "Manage add-ons",
		Long:    "Provision, attach, inspect and remove add-ons",
	}

	cmd.AddCommand(newAddonsListCommand())
	cmd.AddCommand(newAddonsInfoCommand())
	cmd.AddCommand(newAddonsCreateCommand())
	cmd.AddCommand(newAddonsDeleteCommand())
	cmd.AddCommand(newAddonsResolveCommand())
	cmd.AddCommand(newAddonsAttachCommand())
	cmd.AddCommand(newAddonsResolveAttachmentCommand())
	cmd.AddCommand(newAddonsProvisionCommand())
	cmd.AddCommand(newAddonsDeprovisionCommand())
	cmd.AddCommand(newAddonsWebhookCommand())

	return cmd
}

func addonTable(addons []heroku.Addon) renderTable {
	return func(table *tablewriter.Table) {
		table.Header("Name", "Service", "Plan", "App", "State")

		for _, addon := range addons {
			_ = table.Append(addon.Name, nameOr(&addon.AddonService), nameOr(&addon.Plan), nameOr(&addon.App), addon.State)
		}
	}
}

func addonRows(addon *heroku.Addon) [][2]string {
	return [][2]string{
		{"ID", addon.ID},
		{"Name", addon.Name},
		{"Service", nameOr(&addon.AddonService)},
		{"Plan", nameOr(&addon.Plan)},
		{"App", nameOr(&addon.App)},
		{"State", addon.State},
		{"Config Vars", strings.Join(addon.ConfigVars, ", ")},
		{"Web URL", valueOr(addon.WebURL)},
		{"Created", formatTime(addon.CreatedAt)},
	}
}

func newAddonsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List add-ons",
		Long:  "List all add-ons on the account, or only those of --app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			var addons *[]heroku.Addon
			if app, _ := cmd.Flags().GetString(appFlag); app != "" {
				addons, err = heroku.Execute(cmd.Context(), client, heroku.NewAppAddonList(app))
			} else {
				addons, err = heroku.Execute(cmd.Context(), client, heroku.NewAddonList())
			}

			if err != nil {
				return fmt.Errorf("failed to list add-ons: %w", err)
			}

			return printResult(cmd.OutOrStdout(), addons, addonTable(*addons))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")

	return cmd
}

func newAddonsInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info ADDON",
		Short: "Show add-on details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			addon, err := heroku.Execute(cmd.Context(), client, heroku.NewAddonDetails(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get add-on: %w", err)
			}

			return printResult(cmd.OutOrStdout(), addon, propertyTable(addonRows(addon)))
		},
	}
}

func newAddonsCreateCommand() *cobra.Command {
	var (
		name       string
		attachAs   string
		confirmApp string
		settings   []string
	)

	cmd := &cobra.Command{
		Use:   "create PLAN",
		Short: "Provision an add-on",
		Long:  "Provision an add-on for --app, e.g. hapi addons create heroku-postgresql:essential-0 -a my-app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			pairs, err := parseConfigPairs(settings)
			if err != nil {
				return err
			}

			create := heroku.NewAddonCreate(app, args[0]).WithConfig(pairs)
			if name != "" {
				create.WithName(name)
			}

			if attachAs != "" {
				create.WithAttachmentName(attachAs)
			}

			if confirmApp != "" {
				create.WithConfirm(confirmApp)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			addon, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to create add-on: %w", err)
			}

			return printResult(cmd.OutOrStdout(), addon, propertyTable(addonRows(addon)))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().StringVar(&name, "name", "", "globally unique add-on name")
	cmd.Flags().StringVar(&attachAs, "as", "", "attachment name")
	cmd.Flags().StringVar(&confirmApp, "confirm", "", "billing entity name to confirm")
	cmd.Flags().StringArrayVarP(&settings, "setting", "s", nil, "provider option KEY=VALUE (repeatable)")

	return cmd
}

func newAddonsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ADDON",
		Short: "Remove an add-on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			if err := confirm(cmd, fmt.Sprintf("Delete add-on %s from %s?", args[0], app)); err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			addon, err := heroku.Execute(cmd.Context(), client, heroku.NewAddonDelete(app, args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete add-on: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted add-on %s\n", addon.Name)

			return nil
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}

func newAddonsResolveCommand() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "resolve ADDON",
		Short: "Resolve an add-on reference",
		Long:  "Resolve an add-on name, attachment name or id to the matching add-ons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve := heroku.NewAddonResolutionCreate(args[0])
			if app, _ := cmd.Flags().GetString(appFlag); app != "" {
				resolve.WithApp(app)
			}

			if service != "" {
				resolve.WithAddonService(service)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			addons, err := heroku.Execute(cmd.Context(), client, resolve)
			if err != nil {
				return fmt.Errorf("failed to resolve add-on: %w", err)
			}

			return printResult(cmd.OutOrStdout(), addons, addonTable(*addons))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().StringVar(&service, "service", "", "add-on service name")

	return cmd
}

func attachmentTable(attachments []heroku.AddonAttachment) renderTable {
	return func(table *tablewriter.Table) {
		table.Header("Name", "Add-on", "App", "Namespace")

		for _, attachment := range attachments {
			_ = table.Append(attachment.Name, nameOr(&attachment.Addon), nameOr(&attachment.App),
				valueOr(attachment.Namespace))
		}
	}
}

func newAddonsAttachCommand() *cobra.Command {
	var name, namespace, confirmApp string

	cmd := &cobra.Command{
		Use:   "attach ADDON",
		Short: "Attach an existing add-on to an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(cmd)
			if err != nil {
				return err
			}

			attach := heroku.NewAttachmentCreate(args[0], app)
			if name != "" {
				attach.WithName(name)
			}

			if namespace != "" {
				attach.WithNamespace(namespace)
			}

			if confirmApp != "" {
				attach.WithConfirm(confirmApp)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			attachment, err := heroku.Execute(cmd.Context(), client, attach)
			if err != nil {
				return fmt.Errorf("failed to attach add-on: %w", err)
			}

			return printResult(cmd.OutOrStdout(), attachment, attachmentTable([]heroku.AddonAttachment{*attachment}))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().StringVar(&name, "as", "", "attachment name")
	cmd.Flags().StringVar(&namespace, "namespace", "", "attachment namespace")
	cmd.Flags().StringVar(&confirmApp, "confirm", "", "app name to confirm")

	return cmd
}

func newAddonsResolveAttachmentCommand() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "resolve-attachment ATTACHMENT",
		Short: "Resolve an attachment reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve := heroku.NewAttachmentResolutionCreate(args[0])
			if app, _ := cmd.Flags().GetString(appFlag); app != "" {
				resolve.WithApp(app)
			}

			if service != "" {
				resolve.WithAddonService(service)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			attachments, err := heroku.Execute(cmd.Context(), client, resolve)
			if err != nil {
				return fmt.Errorf("failed to resolve attachment: %w", err)
			}

			return printResult(cmd.OutOrStdout(), attachments, attachmentTable(*attachments))
		},
	}

	cmd.Flags().StringP(appFlag, "a", "", "app name or id")
	cmd.Flags().StringVar(&service, "service", "", "add-on service name")

	return cmd
}

func newAddonsProvisionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-provisioned ADDON",
		Short: "Mark an add-on as provisioned (providers only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			addon, err := heroku.Execute(cmd.Context(), client, heroku.NewAddonActionProvision(args[0]))
			if err != nil {
				return fmt.Errorf("failed to mark add-on provisioned: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", addon.Name, addon.State)

			return nil
		},
	}
}

func newAddonsDeprovisionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-deprovisioned ADDON",
		Short: "Mark an add-on as deprovisioned (providers only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			addon, err := heroku.Execute(cmd.Context(), client, heroku.NewAddonActionDeprovision(args[0]))
			if err != nil {
				return fmt.Errorf("failed to mark add-on deprovisioned: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", addon.Name, addon.State)

			return nil
		},
	}
}

func newAddonsWebhookCommand() *cobra.Command {
	var (
		include       []string
		level         string
		url           string
		secret        string
		authorization string
	)

	cmd := &cobra.Command{
		Use:   "webhook ADDON",
		Short: "Create an add-on webhook",
		Long:  "Subscribe a URL to add-on events, e.g. --include api:release --level notify",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create := heroku.NewWebhookCreate(args[0], include, level, url)
			if secret != "" {
				create.WithSecret(secret)
			}

			if authorization != "" {
				create.WithAuthorization(authorization)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			webhook, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			return printResult(cmd.OutOrStdout(), webhook, propertyTable([][2]string{
				{"ID", webhook.Webhook.ID},
				{"Add-on", nameOr(&webhook.Addon)},
				{"URL", webhook.Webhook.URL},
				{"Level", webhook.Webhook.Level},
				{"Include", strings.Join(webhook.Webhook.Include, ", ")},
			}))
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "event types to deliver")
	cmd.Flags().StringVar(&level, "level", heroku.WebhookLevelNotify, "delivery level (notify or sync)")
	cmd.Flags().StringVar(&url, "url", "", "delivery URL")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret")
	cmd.Flags().StringVar(&authorization, "authorization", "", "Authorization header sent with deliveries")

	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("include")

	return cmd
}
