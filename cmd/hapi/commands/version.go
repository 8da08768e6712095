package commands

import (
	"github.com/spf13/cobra"
)

// VersionInfo describes the build.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the hapi CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			return printResult(cmd.OutOrStdout(), info, propertyTable([][2]string{
				{"Version", version},
				{"Commit", commit},
				{"Built", date},
			}))
		},
	}
}
