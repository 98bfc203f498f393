package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/config"
	"github.com/umbrellabird/treewatch/internal/output"
	"golang.org/x/term"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Global flags
var (
	outputFmt   string
	formatAlias string
	outputType  output.Format
	configFile  string
	queryExpr   string
	queryFile   string
	errorFmt    string
	quietFlag   bool
)

// cfg is the loaded configuration shared across commands
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "treewatch",
	Short: "Reconstruct hierarchies from tree-style listings",
	Long: `treewatch reads the line-art output of a "tree"-style directory
printer and reconstructs the hierarchy it describes, emitting one
record per node with its fully qualified path.

Input comes from a file argument or stdin. Both the Unicode box
drawing style (├── name) and the Windows ASCII style (+---name) are
understood. Lines that do not look like tree structure are skipped
and counted, never fatal.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true

		skipConfigLoad := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
		if !skipConfigLoad {
			loaded, err := loadConfigFromFlag()
			if err != nil {
				return formatConfigLoadError(err)
			}
			cfg = loaded
		}

		// Output format selection: --output > --format > config > default
		formatStr := requestedFormat(cmd)
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && cfg != nil && strings.TrimSpace(cfg.OutputFormat) != "" {
			formatStr = strings.TrimSpace(cfg.OutputFormat)
		}
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && !isTerminal(cmd.OutOrStdout()) {
			formatStr = "json"
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format
		outputFmt = string(format)

		// jq query
		if queryExpr != "" && queryFile != "" {
			return fmt.Errorf("use only one of --query or --query-file")
		}
		if queryFile != "" {
			loaded, err := readInputSource(queryFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			queryExpr = loaded
		}

		// Default quiet mode for non-interactive structured output
		if !flagChanged(cmd, "quiet") && !isTerminal(cmd.OutOrStdout()) && output.IsStructured(outputType) {
			quietFlag = true
		}

		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = output.WithQuiet(ctx, quietFlag)
		ctx = WithErrorFormat(ctx, errorFmt)
		cmd.SetContext(ctx)

		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}
		if effectiveErrorFormat(ctx) != "text" {
			cmd.SilenceUsage = true
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(rootCmd.Context(), err)
		return err
	}
	return nil
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() output.Format {
	if outputType != "" {
		return outputType
	}
	parsed, err := output.ParseFormat(outputFmt)
	if err != nil {
		return output.FormatText
	}
	return parsed
}

// pathSeparator returns the configured full-path separator.
func pathSeparator() string {
	return cfg.Separator()
}

// requestedFormat resolves the flag-level format request. --output wins
// over its --format alias when both are given.
func requestedFormat(cmd *cobra.Command) string {
	if flagChanged(cmd, "output") {
		return outputFmt
	}
	if flagChanged(cmd, "format") {
		return formatAlias
	}
	return outputFmt
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("treewatch version %s (commit: %s, built: %s)\n", version, commit, date))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format (text|json|ndjson|table|yaml)")
	rootCmd.PersistentFlags().StringVar(&formatAlias, "format", "text", "Alias for --output")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&queryFile, "query-file", "", "Read jq expression from file (use - for stdin)")
	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/treewatch/config.yaml)")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
