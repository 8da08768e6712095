package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fivetwenty-io/hapi/cmd/hapi/commands"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hapi",
	Short: "Heroku Platform API CLI",
	Long: `A command-line interface for the Heroku Platform API.

hapi manages apps, add-ons, builds, collaborators and private spaces.
The API token is read from --token, HAPI_TOKEN, the config file or
HEROKU_API_KEY, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.hapi/config.yml)")
	rootCmd.PersistentFlags().String("api", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringP("token", "t", "", "Platform API token")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP traffic to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewWhoamiCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAccountCommand())
	rootCmd.AddCommand(commands.NewAppsCommand())
	rootCmd.AddCommand(commands.NewAddonsCommand())
	rootCmd.AddCommand(commands.NewBuildsCommand())
	rootCmd.AddCommand(commands.NewCollaboratorsCommand())
	rootCmd.AddCommand(commands.NewSpacesCommand())
}

func initConfig() {
	// A missing .env is not an error.
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.hapi/config.yml
		viper.AddConfigPath(filepath.Join(home, ".hapi"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("HAPI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
