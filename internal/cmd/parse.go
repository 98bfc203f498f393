package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/umbrellabird/treewatch/internal/output"
	"github.com/umbrellabird/treewatch/internal/treetext"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse tree text into fully qualified paths",
	Long: `Parse the output of a tree-style directory printer and emit one
record per node with its name, depth, full path, and parent path.

Reads from the file argument, or from stdin when the argument is
omitted or "-". Report headers, spacer lines, and lines without a
recognizable connector are skipped and counted; they never abort the
parse.

Examples:
  # Paths, one per line
  tree | treewatch parse

  # Stream records as NDJSON
  treewatch parse tree_output.txt -o ndjson

  # Only directories at depth 2, via jq
  treewatch parse tree_output.txt -o json --query '.[] | select(.depth == 2)'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var (
	parseSep   string
	parseLimit int
)

func init() {
	parseCmd.Flags().StringVar(&parseSep, "sep", "", "Separator joining path segments in text and table output (default from config, else /)")
	parseCmd.Flags().IntVar(&parseLimit, "limit", 0, "Maximum number of nodes to emit (0 = unlimited)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	nodes, stats, err := treetext.CollectDocument(in)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if parseLimit > 0 && len(nodes) > parseLimit {
		nodes = nodes[:parseLimit]
	}

	sep := pathSeparator()
	if strings.TrimSpace(parseSep) != "" {
		sep = parseSep
	}
	if err := printNodes(cmd, nodes, sep); err != nil {
		return err
	}

	if !output.QuietFromContext(cmd.Context()) {
		fmt.Fprintf(stderrFromContext(cmd.Context()), "Parsed %d nodes (%d lines, %d skipped)\n",
			len(nodes), stats.Lines, stats.Skipped)
	}
	return nil
}

func printNodes(cmd *cobra.Command, nodes []*treetext.Node, sep string) error {
	switch GetOutputFormat() {
	case output.FormatTable:
		return printStructured(nodesTable(nodes, sep))
	case output.FormatText:
		out := stdoutFromContext(cmd.Context())
		for _, n := range nodes {
			if _, err := fmt.Fprintln(out, n.FullPath(sep)); err != nil {
				return err
			}
		}
		return nil
	default:
		return printStructured(nodes)
	}
}

func nodesTable(nodes []*treetext.Node, sep string) output.Table {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{n.Name, strconv.Itoa(n.Depth), n.FullPath(sep)})
	}
	return output.Table{Headers: []string{"name", "depth", "path"}, Rows: rows}
}
