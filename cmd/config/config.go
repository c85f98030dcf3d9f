// Package config wires viper-backed settings for the CLI: defaults,
// the CLICKUP_* environment, and an optional settings file.
package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heliosam/clickup-setup/pkg/clickup"
)

var cfgFile string

// InitConfig loads settings from flags, environment and an optional
// clickup-setup.yaml in the working directory.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("clickup-setup")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CLICKUP")

	viper.SetDefault("base_url", clickup.DefaultBaseURL)
	viper.SetDefault("workspace_config", "config.yaml")
	viper.SetDefault("request_delay", clickup.DefaultRequestDelay)
	viper.SetDefault("rate_limit_wait", clickup.DefaultRateLimitWait)
	viper.SetDefault("http_timeout", clickup.DefaultHTTPTimeout)

	// A settings file is optional; defaults and env cover normal runs.
	_ = viper.ReadInConfig()
}

// AddGlobalFlags registers the persistent flags shared by every
// subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "settings", "", "settings file (default ./clickup-setup.yaml)")
}

// WorkspaceConfigPath returns the workspace document path, preferring
// an explicit argument over the configured default.
func WorkspaceConfigPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return viper.GetString("workspace_config")
}

// ClientOptions assembles the remote client options from settings.
func ClientOptions(log *logrus.Logger) clickup.Options {
	return clickup.Options{
		BaseURL:       viper.GetString("base_url"),
		RequestDelay:  viper.GetDuration("request_delay"),
		RateLimitWait: viper.GetDuration("rate_limit_wait"),
		HTTPTimeout:   viper.GetDuration("http_timeout"),
		Logger:        log,
	}
}
