package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/config"
)

// loadConfigFromFlag loads config from --config if provided, otherwise from default path.
func loadConfigFromFlag() (*config.Config, error) {
	if strings.TrimSpace(configFile) != "" {
		return config.Load(configFile)
	}
	return config.ReadConfig()
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name) {
		return true
	}
	return cmd.InheritedFlags().Changed(name)
}

func formatConfigLoadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load config: %w", err)
}
