package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fivetwenty-io/hapi/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".hapi"
	configFileName = "config.yml"
)

// Config represents the CLI configuration file.
type Config struct {
	API       string `json:"api,omitempty"        yaml:"api,omitempty"`
	Token     string `json:"token,omitempty"      yaml:"token,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	RetryMax  int    `json:"retry_max,omitempty"  yaml:"retry_max,omitempty"`
}

// configSetters maps each settable key to its field.
var configSetters = map[string]func(config *Config, value string) error{
	"api":        func(c *Config, v string) error { c.API = v; return nil },
	"token":      func(c *Config, v string) error { c.Token = v; return nil },
	"output":     setOutput,
	"user_agent": func(c *Config, v string) error { c.UserAgent = v; return nil },
	"retry_max":  setRetryMax,
}

func setOutput(config *Config, value string) error {
	switch value {
	case constants.FormatJSON, constants.FormatYAML, constants.FormatTable, "":
		config.Output = value

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, value)
	}
}

func setRetryMax(config *Config, value string) error {
	if value == "" {
		config.RetryMax = 0

		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRetryMax, value)
	}

	config.RetryMax = n

	return nil
}

// ConfigPersister serializes reads and writes of the config file.
type ConfigPersister struct {
	mutex sync.Mutex
	path  string
}

// NewConfigPersister creates a persister for the config file at path. An
// empty path selects the default location.
func NewConfigPersister(path string) *ConfigPersister {
	return &ConfigPersister{path: path}
}

// Path returns the config file location.
func (p *ConfigPersister) Path() (string, error) {
	if p.path != "" {
		return p.path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config file. A missing file yields an empty config.
func (p *ConfigPersister) Load() (*Config, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.load()
}

func (p *ConfigPersister) load() (*Config, error) {
	path, err := p.Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Update loads the config, applies fn and writes the result back.
func (p *ConfigPersister) Update(fn func(config *Config) error) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config, err := p.load()
	if err != nil {
		return err
	}

	if err := fn(config); err != nil {
		return err
	}

	return p.save(config)
}

func (p *ConfigPersister) save(config *Config) error {
	path, err := p.Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// persister returns the persister for the file selected by --config.
func persister() *ConfigPersister {
	return NewConfigPersister(viper.GetString("config"))
}

func maskToken(token string) string {
	if token == "" {
		return constants.NotAvailable
	}

	if len(token) <= constants.TokenPreviewLength {
		return constants.MaskedSecret
	}

	return token[:constants.TokenPreviewLength] + constants.MaskedSecret
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the hapi configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration file contents with the token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := persister().Load()
			if err != nil {
				return err
			}

			shown := *config
			if shown.Token != "" {
				shown.Token = maskToken(shown.Token)
			}

			return printResult(cmd.OutOrStdout(), shown, func(table *tablewriter.Table) {
				table.Header("Key", "Value")
				_ = table.Append("api", orNA(shown.API))
				_ = table.Append("token", maskToken(config.Token))
				_ = table.Append("output", orNA(shown.Output))
				_ = table.Append("user_agent", orNA(shown.UserAgent))
				_ = table.Append("retry_max", strconv.Itoa(shown.RetryMax))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: " + configKeyList(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			setter, ok := configSetters[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			if err := persister().Update(func(config *Config) error {
				return setter(config, value)
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Reset a configuration value to its default. Valid keys: " + configKeyList(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			setter, ok := configSetters[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			if err := persister().Update(func(config *Config) error {
				return setter(config, "")
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all configuration",
		Long:  "Remove every value from the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, "Clear all configuration?"); err != nil {
				return err
			}

			if err := persister().Update(func(config *Config) error {
				*config = Config{}

				return nil
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}

	cmd.Flags().BoolP(forceFlag, "f", false, "skip confirmation")

	return cmd
}

func configKeyList() string {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return strings.Join(keys, ", ")
}

func orNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}
