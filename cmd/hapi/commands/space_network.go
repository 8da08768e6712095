package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newSpacesVPNCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vpn",
		Aliases: []string{"vpns"},
		Short:   "Manage VPN connections of a space",
	}

	cmd.AddCommand(newSpacesVPNListCommand())
	cmd.AddCommand(newSpacesVPNInfoCommand())
	cmd.AddCommand(newSpacesVPNCreateCommand())
	cmd.AddCommand(newSpacesVPNDeleteCommand())

	return cmd
}

func vpnRows(vpn *heroku.VPN) [][2]string {
	rows := [][2]string{
		{"ID", vpn.ID},
		{"Name", vpn.Name},
		{"Public IP", vpn.PublicIP},
		{"Routable CIDRs", strings.Join(vpn.RoutableCIDRs, ", ")},
		{"Space CIDR", vpn.SpaceCIDR},
		{"IKE Version", strconv.Itoa(vpn.IKEVersion)},
		{"Status", vpn.Status},
	}

	for i, tunnel := range vpn.Tunnels {
		rows = append(rows, [2]string{
			fmt.Sprintf("Tunnel %d", i+1),
			fmt.Sprintf("%s -> %s (%s)", tunnel.IP, tunnel.CustomerIP, tunnel.Status),
		})
	}

	return rows
}

func newSpacesVPNListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list SPACE",
		Short: "List VPN connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			vpns, err := heroku.Execute(cmd.Context(), client, heroku.NewVPNList(args[0]))
			if err != nil {
				return fmt.Errorf("failed to list VPN connections: %w", err)
			}

			return printResult(cmd.OutOrStdout(), vpns, func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Public IP", "Routable CIDRs", "Status")

				for _, vpn := range *vpns {
					_ = table.Append(vpn.Name, vpn.ID, vpn.PublicIP, strings.Join(vpn.RoutableCIDRs, ", "), vpn.Status)
				}
			})
		},
	}
}

func newSpacesVPNInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info SPACE VPN",
		Short: "Show a VPN connection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			vpn, err := heroku.Execute(cmd.Context(), client, heroku.NewVPNDetails(args[0], args[1]))
			if err != nil {
				return fmt.Errorf("failed to get VPN connection: %w", err)
			}

			return printResult(cmd.OutOrStdout(), vpn, propertyTable(vpnRows(vpn)))
		},
	}
}

func newSpacesVPNCreateCommand() *cobra.Command {
	var (
		publicIP string
		cidrs    []string
	)

	cmd := &cobra.Command{
		Use:   "create SPACE NAME",
		Short: "Create a VPN connection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			vpn, err := heroku.Execute(cmd.Context(), client, heroku.NewVPNCreate(args[0], args[1], publicIP, cidrs))
			if err != nil {
				return fmt.Errorf("failed to create VPN connection: %w", err)
			}

			return printResult(cmd.OutOrStdout(), vpn, propertyTable(vpnRows(vpn)))
		},
	}

	cmd.Flags().StringVar(&publicIP, "public-ip", "", "public IP of the customer gateway")
	cmd.Flags().StringSliceVar(&cidrs, "cidr", nil, "routable CIDR block (repeatable)")

	_ = cmd.MarkFlagRequired("public-ip")
	_ = cmd.MarkFlagRequired("cidr")

	return cmd
}

func newSpacesVPNDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete SPACE VPN",
		Short: "Delete a VPN connection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, fmt.Sprintf("Delete VPN %s in %s?", args[1], args[0])); err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			vpn, err := heroku.Execute(cmd.Context(), client, heroku.NewVPNDelete(args[0], args[1]))
			if err != nil {
				return fmt.Errorf("failed to delete VPN connection: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted VPN connection %s\n", vpn.Name)

			return nil
		},
	}

	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}

func inboundTable(ruleset *heroku.InboundRuleset) renderTable {
	return func(table *tablewriter.Table) {
		table.Header("Action", "Source")

		for _, rule := range ruleset.Rules {
			_ = table.Append(rule.Action, rule.Source)
		}
	}
}

func newSpacesInboundRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbound-rules SPACE",
		Short: "Show the current inbound ruleset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ruleset, err := heroku.Execute(cmd.Context(), client, heroku.NewInboundRulesetCurrent(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get inbound ruleset: %w", err)
			}

			return printResult(cmd.OutOrStdout(), ruleset, inboundTable(ruleset))
		},
	}

	cmd.AddCommand(newSpacesInboundHistoryCommand())
	cmd.AddCommand(newSpacesInboundSetCommand())

	return cmd
}

func newSpacesInboundHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history SPACE",
		Short: "List previous inbound rulesets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			rulesets, err := heroku.Execute(cmd.Context(), client, heroku.NewInboundRulesetList(args[0]))
			if err != nil {
				return fmt.Errorf("failed to list inbound rulesets: %w", err)
			}

			return printResult(cmd.OutOrStdout(), rulesets, func(table *tablewriter.Table) {
				table.Header("ID", "Rules", "Created By", "Created")

				for _, ruleset := range *rulesets {
					_ = table.Append(ruleset.ID, strconv.Itoa(len(ruleset.Rules)), ruleset.CreatedBy, ruleset.CreatedAt)
				}
			})
		},
	}
}

func newSpacesInboundSetCommand() *cobra.Command {
	var allow, deny []string

	cmd := &cobra.Command{
		Use:   "set SPACE",
		Short: "Replace the inbound ruleset",
		Long:  "Replace the inbound ruleset, e.g. --allow 0.0.0.0/0 --deny 10.0.0.0/8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create := heroku.NewInboundRulesetCreate(args[0])
			for _, source := range allow {
				create.WithRule(heroku.RuleActionAllow, source)
			}

			for _, source := range deny {
				create.WithRule(heroku.RuleActionDeny, source)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ruleset, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to set inbound ruleset: %w", err)
			}

			return printResult(cmd.OutOrStdout(), ruleset, inboundTable(ruleset))
		},
	}

	cmd.Flags().StringSliceVar(&allow, "allow", nil, "source CIDR to allow (repeatable)")
	cmd.Flags().StringSliceVar(&deny, "deny", nil, "source CIDR to deny (repeatable)")

	return cmd
}

func outboundTable(ruleset *heroku.OutboundRuleset) renderTable {
	return func(table *tablewriter.Table) {
		table.Header("Target", "Protocol", "From Port", "To Port")

		for _, rule := range ruleset.Rules {
			_ = table.Append(rule.Target, rule.Protocol, strconv.Itoa(rule.FromPort), strconv.Itoa(rule.ToPort))
		}
	}
}

func newSpacesOutboundRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbound-rules SPACE",
		Short: "Show the current outbound ruleset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ruleset, err := heroku.Execute(cmd.Context(), client, heroku.NewOutboundRulesetCurrent(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get outbound ruleset: %w", err)
			}

			return printResult(cmd.OutOrStdout(), ruleset, outboundTable(ruleset))
		},
	}

	cmd.AddCommand(newSpacesOutboundHistoryCommand())
	cmd.AddCommand(newSpacesOutboundSetCommand())

	return cmd
}

func newSpacesOutboundHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history SPACE",
		Short: "List previous outbound rulesets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			rulesets, err := heroku.Execute(cmd.Context(), client, heroku.NewOutboundRulesetList(args[0]))
			if err != nil {
				return fmt.Errorf("failed to list outbound rulesets: %w", err)
			}

			return printResult(cmd.OutOrStdout(), rulesets, func(table *tablewriter.Table) {
				table.Header("ID", "Rules", "Created By", "Created")

				for _, ruleset := range *rulesets {
					_ = table.Append(ruleset.ID, strconv.Itoa(len(ruleset.Rules)), ruleset.CreatedBy, ruleset.CreatedAt)
				}
			})
		},
	}
}

// parseOutboundRule reads "TARGET:PROTOCOL:PORTS", e.g. 10.0.0.0/8:tcp:80-443.
func parseOutboundRule(s string) (heroku.OutboundRule, error) {
	// Split from the right so IPv6 targets keep their colons.
	portsAt := strings.LastIndex(s, ":")
	if portsAt <= 0 {
		return heroku.OutboundRule{}, fmt.Errorf("%w: %q", ErrInvalidOutboundRule, s)
	}

	protocolAt := strings.LastIndex(s[:portsAt], ":")
	if protocolAt <= 0 {
		return heroku.OutboundRule{}, fmt.Errorf("%w: %q", ErrInvalidOutboundRule, s)
	}

	from, to, err := parsePortRange(s[portsAt+1:])
	if err != nil {
		return heroku.OutboundRule{}, err
	}

	return heroku.OutboundRule{
		Target:   s[:protocolAt],
		Protocol: s[protocolAt+1 : portsAt],
		FromPort: from,
		ToPort:   to,
	}, nil
}

func newSpacesOutboundSetCommand() *cobra.Command {
	var rules []string

	cmd := &cobra.Command{
		Use:   "set SPACE",
		Short: "Replace the outbound ruleset",
		Long:  "Replace the outbound ruleset, e.g. --rule 0.0.0.0/0:tcp:443 --rule 10.0.0.0/8:udp:53",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			create := heroku.NewOutboundRulesetCreate(args[0])

			for _, raw := range rules {
				rule, err := parseOutboundRule(raw)
				if err != nil {
					return err
				}

				create.WithRule(rule.Target, rule.Protocol, rule.FromPort, rule.ToPort)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ruleset, err := heroku.Execute(cmd.Context(), client, create)
			if err != nil {
				return fmt.Errorf("failed to set outbound ruleset: %w", err)
			}

			return printResult(cmd.OutOrStdout(), ruleset, outboundTable(ruleset))
		},
	}

	cmd.Flags().StringArrayVar(&rules, "rule", nil, "rule TARGET:PROTOCOL:FROM[-TO] (repeatable)")

	return cmd
}
