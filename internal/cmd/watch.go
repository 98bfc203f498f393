package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/output"
	"github.com/umbrellabird/treewatch/internal/treetext"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-emit parsed nodes when a tree file changes",
	Long: `Poll a tree output file and re-emit the parsed node stream every
time the file changes, until interrupted. Pairs with a shell loop or
scheduled task that refreshes the file, e.g.:

  tree /F > tree_output.txt   (repeated)
  treewatch watch tree_output.txt -o ndjson

Change detection compares modification time and size between polls. A
file that momentarily disappears or fails to parse is reported on
stderr and watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Poll interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := strings.TrimSpace(args[0])
	if path == "" || path == "-" {
		return fmt.Errorf("watch requires a file path")
	}
	if watchInterval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	lastMod, lastSize := info.ModTime(), info.Size()

	if err := reloadTreeFile(cmd, path); err != nil {
		return err
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	stderr := stderrFromContext(cmd.Context())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				fmt.Fprintf(stderr, "watch %s: %v\n", path, err)
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			if err := reloadTreeFile(cmd, path); err != nil {
				fmt.Fprintf(stderr, "watch %s: %v\n", path, err)
			}
		}
	}
}

func reloadTreeFile(cmd *cobra.Command, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	nodes, stats, err := treetext.CollectDocument(file)
	if err != nil {
		return err
	}
	if err := printNodes(cmd, nodes, pathSeparator()); err != nil {
		return err
	}

	if !output.QuietFromContext(cmd.Context()) {
		fmt.Fprintf(stderrFromContext(cmd.Context()), "Loaded %s: %d nodes (%d lines, %d skipped)\n",
			path, stats.Nodes, stats.Lines, stats.Skipped)
	}
	return nil
}
