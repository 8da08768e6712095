package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/fivetwenty-io/hapi/internal/logging"
	"github.com/fivetwenty-io/hapi/pkg/heroku"
	"github.com/fivetwenty-io/hapi/pkg/herokuclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	Yes = "yes"
	No  = "no"

	// JSON formatting.
	defaultJSONIndent = 2

	// Flag names shared by several commands.
	appFlag   = "app"
	forceFlag = "force"
)

// Common static errors used throughout the commands package.
var (
	ErrUnsupportedOutput   = errors.New("unsupported output format")
	ErrAborted             = errors.New("aborted, pass --force to skip confirmation")
	ErrNothingToUpdate     = errors.New("no changes requested")
	ErrInvalidPortRange    = errors.New("invalid port range, expected FROM-TO")
	ErrInvalidConfigPair   = errors.New("invalid config pair, expected KEY=VALUE")
	ErrInvalidRetryMax     = errors.New("retry_max must be a non-negative integer")
	ErrInvalidOutboundRule = errors.New("invalid outbound rule, expected TARGET:PROTOCOL:PORTS")
)

// outputFormat returns the requested output format, defaulting to table.
func outputFormat() string {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// renderTable is called with a ready table when the output format is table.
type renderTable func(table *tablewriter.Table)

// printResult writes v as json or yaml, or calls render for table output.
func printResult(w io.Writer, v any, render renderTable) error {
	switch outputFormat() {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return nil
	case constants.FormatTable:
		table := tablewriter.NewWriter(w)
		render(table)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, outputFormat())
	}
}

// propertyTable renders key/value rows under a Property/Value header.
func propertyTable(rows [][2]string) renderTable {
	return func(table *tablewriter.Table) {
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row[0], row[1])
		}
	}
}

// createClient builds a Platform API client from the resolved CLI config.
func createClient(cmd *cobra.Command) (heroku.Client, error) {
	config := &heroku.Config{
		APIEndpoint: viper.GetString("api"),
		Token:       viper.GetString("token"),
		UserAgent:   viper.GetString("user_agent"),
		RetryMax:    viper.GetInt("retry_max"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = logging.New("debug", cmd.ErrOrStderr())
	}

	client, err := herokuclient.New(cmd.Context(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// requireApp returns the --app flag value.
func requireApp(cmd *cobra.Command) (string, error) {
	app, _ := cmd.Flags().GetString(appFlag)
	if app == "" {
		app = os.Getenv("HEROKU_APP")
	}

	if app == "" {
		return "", constants.ErrAppRequired
	}

	return app, nil
}

// confirm asks for a yes/no answer unless --force is set.
func confirm(cmd *cobra.Command, prompt string) error {
	if force, _ := cmd.Flags().GetBool(forceFlag); force {
		return nil
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)

	var answer string

	_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", Yes:
		return nil
	default:
		return ErrAborted
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return formatTime(*t)
}

func valueOr(s *string) string {
	if s == nil || *s == "" {
		return constants.NotAvailable
	}

	return *s
}

func nameOr(ref *heroku.Reference) string {
	if ref == nil {
		return constants.NotAvailable
	}

	if ref.Name != "" {
		return ref.Name
	}

	if ref.ID != "" {
		return ref.ID
	}

	return constants.NotAvailable
}

func yesNo(b bool) string {
	if b {
		return Yes
	}

	return No
}

func formatBytes(n *int) string {
	if n == nil {
		return constants.NotAvailable
	}

	const unit = 1024

	if *n < unit {
		return strconv.Itoa(*n) + " B"
	}

	div, exp := int64(unit), 0
	for v := int64(*n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(*n)/float64(div), "KMGTPE"[exp])
}

// parseConfigPairs turns KEY=VALUE arguments into a map.
func parseConfigPairs(pairs []string) (map[string]string, error) {
	config := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidConfigPair, pair)
		}

		config[key] = value
	}

	return config, nil
}

// parsePortRange accepts "80" or "80-443".
func parsePortRange(s string) (int, int, error) {
	fromStr, toStr, found := strings.Cut(s, "-")
	if !found {
		toStr = fromStr
	}

	from, err := strconv.Atoi(strings.TrimSpace(fromStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPortRange, s)
	}

	to, err := strconv.Atoi(strings.TrimSpace(toStr))
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPortRange, s)
	}

	return from, to, nil
}
