package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/config"
	"github.com/umbrellabird/treewatch/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage CLI configuration stored in ~/.config/treewatch/config.yaml.

You can view, set, or unset config keys such as output_format,
path_separator, folder_icon, and file_icon.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfigFromFlag()
		if err != nil {
			return formatConfigLoadError(err)
		}
		if structuredOutputRequested() {
			return printStructured(configOutput(loaded))
		}

		out := stdoutFromContext(cmd.Context())
		fmt.Fprintln(out, "Config:")
		fmt.Fprintf(out, "  output_format: %s\n", loaded.OutputFormat)
		fmt.Fprintf(out, "  path_separator: %s\n", loaded.Separator())
		folder, file := loaded.Icons()
		fmt.Fprintf(out, "  folder_icon: %s\n", folder)
		fmt.Fprintf(out, "  file_icon: %s\n", file)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Unset a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported configuration keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := supportedConfigKeys()
		sort.Strings(keys)

		if structuredOutputRequested() {
			return printStructured(keys)
		}

		out := stdoutFromContext(cmd.Context())
		fmt.Fprintln(out, "Supported keys:")
		for _, key := range keys {
			fmt.Fprintf(out, "  %s\n", key)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if structuredOutputRequested() {
			return printStructured(map[string]string{"path": path})
		}
		fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
		return nil
	},
}

func configPath() (string, error) {
	if strings.TrimSpace(configFile) != "" {
		return configFile, nil
	}
	return config.DefaultConfigPath()
}

func supportedConfigKeys() []string {
	return []string{
		"output_format",
		"path_separator",
		"folder_icon",
		"file_icon",
	}
}

func applyConfigValue(c *config.Config, key, value string) error {
	switch key {
	case "output_format":
		c.OutputFormat = value
	case "path_separator":
		c.PathSeparator = value
	case "folder_icon":
		c.FolderIcon = value
	case "file_icon":
		c.FileIcon = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func clearConfigValue(c *config.Config, key string) error {
	switch key {
	case "output_format":
		c.OutputFormat = ""
	case "path_separator":
		c.PathSeparator = ""
	case "folder_icon":
		c.FolderIcon = ""
	case "file_icon":
		c.FileIcon = ""
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))
	value := strings.TrimSpace(args[1])

	loaded, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}

	if key == "output_format" {
		if _, err := output.ParseFormat(value); err != nil {
			return err
		}
	}
	if err := applyConfigValue(loaded, key, value); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := loaded.Save(path); err != nil {
		return err
	}

	if structuredOutputRequested() {
		return printStructured(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}

	fmt.Fprintf(stdoutFromContext(cmd.Context()), "Updated %s\n", key)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))

	loaded, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}

	if err := clearConfigValue(loaded, key); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := loaded.Save(path); err != nil {
		return err
	}

	if structuredOutputRequested() {
		return printStructured(map[string]string{
			"status": "unset",
			"key":    key,
		})
	}

	fmt.Fprintf(stdoutFromContext(cmd.Context()), "Unset %s\n", key)
	return nil
}

func configOutput(c *config.Config) map[string]interface{} {
	folder, file := c.Icons()
	return map[string]interface{}{
		"output_format":  c.OutputFormat,
		"path_separator": c.Separator(),
		"folder_icon":    folder,
		"file_icon":      file,
	}
}
