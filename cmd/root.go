package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/heliosam/clickup-setup/cmd/config"
)

// NewRootCmd assembles the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clickup-setup",
		Short: "Provision a ClickUp workspace from a declarative config",
		Long: `clickup-setup provisions a complete ClickUp workspace structure
(spaces, folders, lists, custom fields, views) from a YAML document,
verifies status workflows, and optionally seeds two example projects.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(cmdconfig.InitConfig)
	cmdconfig.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(NewSetupCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
